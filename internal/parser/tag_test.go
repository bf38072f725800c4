package parser

import (
	"testing"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag        string
		wantWidth  uint
		wantAccess schema.Access
		wantHasAcc bool
		wantIgnore bool
		wantErr    bool
	}{
		// Widths
		{"", 0, schema.ReadWrite, false, false, false},
		{"1", 1, schema.ReadWrite, false, false, false},
		{"4", 4, schema.ReadWrite, false, false, false},
		{"64", 64, schema.ReadWrite, false, false, false},

		// Access modes
		{"access=rw", 0, schema.ReadWrite, true, false, false},
		{"access=ro", 0, schema.ReadOnly, true, false, false},
		{"4,access=wo", 4, schema.WriteOnly, true, false, false},
		{"4,access=none", 4, schema.NoAccess, true, false, false},

		// Excluded from packing
		{"-", 0, schema.ReadWrite, false, true, false},

		// Error cases
		{",", 0, 0, false, false, true},                   // empty items
		{"0", 0, 0, false, false, true},                   // zero width
		{"-4", 0, 0, false, false, true},                  // negative width
		{"abc", 0, 0, false, false, true},                 // unknown item
		{"4,8", 0, 0, false, false, true},                 // double width
		{"access=", 0, 0, false, false, true},             // empty access
		{"access=rx", 0, 0, false, false, true},           // bad access
		{"access=ro,access=wo", 0, 0, false, false, true}, // double access
		{"count=Len", 0, 0, false, false, true},           // unknown param
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTag(%q) expected error, got nil", tt.tag)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTag(%q) unexpected error: %v", tt.tag, err)
			}

			if got.WidthBits != tt.wantWidth {
				t.Errorf("ParseTag(%q).WidthBits = %d, want %d", tt.tag, got.WidthBits, tt.wantWidth)
			}

			if got.Access != tt.wantAccess {
				t.Errorf("ParseTag(%q).Access = %v, want %v", tt.tag, got.Access, tt.wantAccess)
			}

			if got.HasAccess != tt.wantHasAcc {
				t.Errorf("ParseTag(%q).HasAccess = %v, want %v", tt.tag, got.HasAccess, tt.wantHasAcc)
			}

			if got.Ignore != tt.wantIgnore {
				t.Errorf("ParseTag(%q).Ignore = %v, want %v", tt.tag, got.Ignore, tt.wantIgnore)
			}
		})
	}
}

func TestParseTagDefaults(t *testing.T) {
	tests := []struct {
		tag         string
		wantWidth   uint
		wantRaw     string
		wantLiteral bool
		wantErr     bool
	}{
		{"4,default=0x3", 4, "0x3", true, false},
		{"default=5", 0, "5", true, false},
		{"1,default=true", 1, "true", true, false},
		{"4,default=-5", 4, "-5", true, false},
		{"8,default=0b1001", 8, "0b1001", true, false},

		// Expressions are kept verbatim, commas included
		{"8,default=Mode(1)", 8, "Mode(1)", false, false},
		{"8,default=max(lo, hi)", 8, "max(lo, hi)", false, false},
		{"default=DefaultMode", 0, "DefaultMode", false, false},
		{"16,default=1 << 9", 16, "1 << 9", false, false},

		// Error cases
		{"4,default=", 0, "", false, true},    // empty default
		{"4,default=1.5", 0, "", false, true}, // float default
		{"default=0x", 0, "", false, true},    // malformed literal
		{"default=5,4", 0, "", false, true},   // default must be last: "5,4" is not an expression
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTag(%q) expected error, got nil", tt.tag)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTag(%q) unexpected error: %v", tt.tag, err)
			}

			if got.WidthBits != tt.wantWidth {
				t.Errorf("ParseTag(%q).WidthBits = %d, want %d", tt.tag, got.WidthBits, tt.wantWidth)
			}

			if got.Default == nil {
				t.Fatalf("ParseTag(%q).Default = nil", tt.tag)
			}

			if got.Default.Raw != tt.wantRaw {
				t.Errorf("ParseTag(%q).Default.Raw = %q, want %q", tt.tag, got.Default.Raw, tt.wantRaw)
			}

			isLiteral := got.Default.Literal != nil
			if isLiteral != tt.wantLiteral {
				t.Errorf("ParseTag(%q) literal = %v, want %v", tt.tag, isLiteral, tt.wantLiteral)
			}
		})
	}
}
