package parser

import (
	"testing"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

func TestParseFile(t *testing.T) {
	f, err := ParseFile("testdata/simple.go")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	if f.Package != "testdata" {
		t.Errorf("Package = %q, want %q", f.Package, "testdata")
	}

	// Should find 2 containers: StatusReg and ControlReg.
	// PlainStruct has no @bitfield annotation.
	if len(f.Containers) != 2 {
		t.Fatalf("ParseFile() found %d containers, want 2", len(f.Containers))
	}

	// Mode is recorded as an alias for uint8
	if got := f.Aliases["Mode"]; got != "uint8" {
		t.Errorf("Aliases[Mode] = %q, want %q", got, "uint8")
	}

	// Test StatusReg
	status := f.Containers[0]
	if status.TypeName != "StatusReg" {
		t.Errorf("Containers[0].TypeName = %q, want %q", status.TypeName, "StatusReg")
	}
	if status.WidthBits != 16 {
		t.Errorf("StatusReg.WidthBits = %d, want 16", status.WidthBits)
	}
	if status.Order != schema.LSBFirst {
		t.Errorf("StatusReg.Order = %v, want lsb", status.Order)
	}
	if status.From != schema.Big || status.Into != schema.Big {
		t.Errorf("StatusReg endians = %v/%v, want big/big", status.From, status.Into)
	}
	if status.SourceFile != "testdata/simple.go" {
		t.Errorf("StatusReg.SourceFile = %q", status.SourceFile)
	}
	if len(status.Fields) != 3 {
		t.Fatalf("StatusReg has %d fields, want 3", len(status.Fields))
	}

	// Check fields
	f0 := status.Fields[0]
	if f0.Name != "A" {
		t.Errorf("fields[0].Name = %q, want %q", f0.Name, "A")
	}
	if f0.Kind != schema.KindUint8 {
		t.Errorf("fields[0].Kind = %v, want uint8", f0.Kind)
	}
	if f0.WidthBits != 0 {
		t.Errorf("fields[0].WidthBits = %d, want 0 (natural)", f0.WidthBits)
	}
	if f0.Role != schema.Normal {
		t.Errorf("fields[0].Role = %v, want normal", f0.Role)
	}

	f1 := status.Fields[1]
	if f1.Name != "B" || f1.WidthBits != 4 {
		t.Errorf("fields[1] = %s/%d bits, want B/4 bits", f1.Name, f1.WidthBits)
	}

	f2 := status.Fields[2]
	if f2.Name != "_pad" {
		t.Errorf("fields[2].Name = %q, want %q", f2.Name, "_pad")
	}
	if f2.Role != schema.Padding {
		t.Errorf("fields[2].Role = %v, want padding", f2.Role)
	}
	if f2.Default == nil || f2.Default.Literal == nil || f2.Default.Literal.Magnitude != 0x3 {
		t.Errorf("fields[2].Default = %+v, want literal 0x3", f2.Default)
	}

	// Test ControlReg
	control := f.Containers[1]
	if control.TypeName != "ControlReg" {
		t.Errorf("Containers[1].TypeName = %q, want %q", control.TypeName, "ControlReg")
	}
	if control.WidthBits != 32 {
		t.Errorf("ControlReg.WidthBits = %d, want 32", control.WidthBits)
	}
	if control.Order != schema.MSBFirst {
		t.Errorf("ControlReg.Order = %v, want msb", control.Order)
	}
	if control.From != schema.Little {
		t.Errorf("ControlReg.From = %v, want little", control.From)
	}
	if control.Into != schema.Big {
		t.Errorf("ControlReg.Into = %v, want big", control.Into)
	}
	if len(control.Fields) != 6 {
		t.Fatalf("ControlReg has %d fields, want 6", len(control.Fields))
	}

	kind := control.Fields[0]
	if kind.Kind != schema.KindCustom || kind.TypeName != "Mode" {
		t.Errorf("Kind field = %v/%s, want custom Mode", kind.Kind, kind.TypeName)
	}
	level := control.Fields[1]
	if level.Kind != schema.KindInt8 {
		t.Errorf("Level.Kind = %v, want int8", level.Kind)
	}
	enabled := control.Fields[3]
	if enabled.Kind != schema.KindBool || enabled.Default == nil || enabled.Default.Literal == nil {
		t.Errorf("Enabled = %+v, want bool with literal default", enabled)
	}
	if enabled.Default.Literal.Magnitude != 1 {
		t.Errorf("Enabled default = %d, want 1 (true)", enabled.Default.Literal.Magnitude)
	}
	blank := control.Fields[4]
	if blank.Name != "_" || blank.Role != schema.Padding || blank.WidthBits != 7 {
		t.Errorf("blank padding field = %+v", blank)
	}
	note := control.Fields[5]
	if note.Role != schema.Ignored {
		t.Errorf("Note.Role = %v, want ignored", note.Role)
	}
	if note.TypeName != "string" {
		t.Errorf("Note.TypeName = %q, want string", note.TypeName)
	}

	// Packed excludes the ignored field
	if got := len(control.Packed()); got != 5 {
		t.Errorf("ControlReg.Packed() has %d fields, want 5", got)
	}
}

func TestParseSourceMultiName(t *testing.T) {
	const src = `package regs

// @bitfield width=16
type Pair struct {
	A, B uint8 ` + "`bits:\"8\"`" + `
}
`
	f, err := ParseSource("pair.go", src)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	if len(f.Containers) != 1 {
		t.Fatalf("found %d containers, want 1", len(f.Containers))
	}

	fields := f.Containers[0].Fields
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].Name != "A" || fields[1].Name != "B" {
		t.Errorf("fields = %s, %s; want A, B", fields[0].Name, fields[1].Name)
	}
	for _, fld := range fields {
		if fld.WidthBits != 8 {
			t.Errorf("field %s width = %d, want 8", fld.Name, fld.WidthBits)
		}
	}
}

func TestParseSourceGroupedDecl(t *testing.T) {
	const src = `package regs

type (
	// @bitfield width=8
	Flags struct {
		Bits uint8 ` + "`bits:\"\"`" + `
	}
)
`
	f, err := ParseSource("flags.go", src)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	if len(f.Containers) != 1 || f.Containers[0].TypeName != "Flags" {
		t.Fatalf("grouped declaration annotation was not picked up: %+v", f.Containers)
	}
}
