package analyzer

import "testing"

func TestTypeRegistry(t *testing.T) {
	reg := NewTypeRegistry()

	// Aliases resolve recursively
	reg.RegisterAlias("Mode", "uint8")
	reg.RegisterAlias("Submode", "Mode")

	// Containers register as custom types with a width
	reg.RegisterCustom("StatusReg", 16)

	tests := []struct {
		goType       string
		wantResolved string
	}{
		// Built-in types pass through
		{"uint64", "uint64"},
		{"bool", "bool"},

		// Aliases collapse onto their primitive
		{"Mode", "uint8"},
		{"Submode", "uint8"},

		// Registered customs keep their name
		{"StatusReg", "StatusReg"},

		// Unknown named types stay custom
		{"Mystery", "Mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.goType, func(t *testing.T) {
			if got := reg.ResolveType(tt.goType); got != tt.wantResolved {
				t.Errorf("ResolveType(%q) = %q, want %q", tt.goType, got, tt.wantResolved)
			}
		})
	}

	if w, ok := reg.CustomWidth("StatusReg"); !ok || w != 16 {
		t.Errorf("CustomWidth(StatusReg) = %d, %v; want 16, true", w, ok)
	}
	if _, ok := reg.CustomWidth("Mystery"); ok {
		t.Error("CustomWidth(Mystery) should not be registered")
	}
}

func TestResolveTypeCycle(t *testing.T) {
	// Not compilable Go, but the parser never type-checks, so resolution
	// must not spin.
	reg := NewTypeRegistry()
	reg.RegisterAlias("A", "B")
	reg.RegisterAlias("B", "A")

	got := reg.ResolveType("A")
	if got != "A" && got != "B" {
		t.Errorf("ResolveType on a cycle = %q", got)
	}
}
