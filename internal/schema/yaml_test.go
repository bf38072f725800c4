package schema

import (
	"errors"
	"strings"
	"testing"
)

const statusRegYAML = `
package: regs
bitfields:
  - name: StatusReg
    width: 16
    order: lsb
    fields:
      - name: A
        type: uint8
      - name: B
        type: uint8
        bits: 4
      - name: _pad
        type: uint8
        bits: 4
        default: "0x3"
`

func TestParseNormalize(t *testing.T) {
	f, err := Parse(strings.NewReader(statusRegYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	containers, err := f.Normalize("status.yaml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if f.Package != "regs" {
		t.Errorf("Package = %q, want %q", f.Package, "regs")
	}
	if len(containers) != 1 {
		t.Fatalf("got %d containers, want 1", len(containers))
	}

	c := containers[0]
	if c.TypeName != "StatusReg" {
		t.Errorf("TypeName = %q, want StatusReg", c.TypeName)
	}
	if c.WidthBits != 16 {
		t.Errorf("WidthBits = %d, want 16", c.WidthBits)
	}
	if c.Order != LSBFirst {
		t.Errorf("Order = %v, want lsb", c.Order)
	}
	if c.From != Big || c.Into != Big {
		t.Errorf("endians = %v/%v, want big/big", c.From, c.Into)
	}
	if c.SourceFile != "status.yaml" {
		t.Errorf("SourceFile = %q", c.SourceFile)
	}
	if len(c.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(c.Fields))
	}

	a := c.Fields[0]
	if a.Name != "A" || a.Kind != KindUint8 || a.WidthBits != 0 {
		t.Errorf("field A = %+v", a)
	}
	b := c.Fields[1]
	if b.WidthBits != 4 {
		t.Errorf("field B width = %d, want 4", b.WidthBits)
	}
	pad := c.Fields[2]
	if pad.Role != Padding {
		t.Errorf("field _pad role = %v, want padding", pad.Role)
	}
	if pad.Default == nil || pad.Default.Literal == nil {
		t.Fatalf("field _pad default = %+v, want literal", pad.Default)
	}
	if pad.Default.Literal.Magnitude != 0x3 {
		t.Errorf("field _pad default = %d, want 3", pad.Default.Literal.Magnitude)
	}
	if pad.Default.Raw != "0x3" {
		t.Errorf("field _pad default raw = %q, want 0x3", pad.Default.Raw)
	}
}

func TestParseToggleDefaults(t *testing.T) {
	doc := `
package: regs
bitfields:
  - name: R
    width: 8
    fields:
      - name: A
        type: uint8
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	containers, err := f.Normalize("r.yaml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	got := containers[0].Gen
	want := DefaultGen()
	if got != want {
		t.Errorf("Gen = %+v, want %+v", got, want)
	}
}

func TestParseToggleExplicitFalse(t *testing.T) {
	doc := `
package: regs
bitfields:
  - name: R
    width: 8
    new: false
    builder: false
    bit_ops: true
    fields:
      - name: A
        type: uint8
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	containers, err := f.Normalize("r.yaml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	gen := containers[0].Gen
	if gen.New {
		t.Error("new: false did not survive defaulting")
	}
	if gen.Builder {
		t.Error("builder: false did not survive defaulting")
	}
	if !gen.BitOps {
		t.Error("bit_ops: true was not honored")
	}
	if !gen.FromBits || !gen.IntoBits || !gen.Marshal || !gen.String {
		t.Errorf("unset toggles lost their defaults: %+v", gen)
	}
}

func TestParseEnumSpellings(t *testing.T) {
	doc := `
package: regs
bitfields:
  - name: R
    width: 32
    order: msb
    from_endian: little
    into_endian: little
    fields:
      - name: A
        type: uint32
        access: ro
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	containers, err := f.Normalize("r.yaml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	c := containers[0]
	if c.Order != MSBFirst {
		t.Errorf("Order = %v, want msb", c.Order)
	}
	if c.From != Little || c.Into != Little {
		t.Errorf("endians = %v/%v, want little/little", c.From, c.Into)
	}
	if c.Fields[0].Access != ReadOnly {
		t.Errorf("Access = %v, want ro", c.Fields[0].Access)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{
			"bad order",
			"package: p\nbitfields:\n  - name: R\n    width: 8\n    order: sideways\n    fields:\n      - name: A\n        type: uint8\n",
			"order must be 'lsb' or 'msb'",
		},
		{
			"bad access",
			"package: p\nbitfields:\n  - name: R\n    width: 8\n    fields:\n      - name: A\n        type: uint8\n        access: rx\n",
			"access must be",
		},
		{
			"unknown key",
			"package: p\nbitfields:\n  - name: R\n    width: 8\n    endian: big\n    fields: []\n",
			"endian",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	doc := "package: p\nbitfields:\n  - name: R\n    width: 8\n    fields:\n      - name: A\n        type: uint8\n        default: \"1.5\"\n"
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, err = f.Normalize("r.yaml")
	if err == nil {
		t.Fatal("expected error for float default")
	}

	var nerr NodeError
	if !errors.As(err, &nerr) {
		t.Fatalf("error %T is not a NodeError", err)
	}
	if nerr.Node.Line != 8 {
		t.Errorf("error line = %d, want 8", nerr.Node.Line)
	}
	if !strings.Contains(err.Error(), "float literals are not supported") {
		t.Errorf("error = %q", err)
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{
			"missing package",
			"bitfields:\n  - name: R\n    width: 8\n    fields:\n      - name: A\n        type: uint8\n",
			"missing a package name",
		},
		{
			"no bitfields",
			"package: p\n",
			"declares no bitfields",
		},
		{
			"missing name",
			"package: p\nbitfields:\n  - width: 8\n    fields:\n      - name: A\n        type: uint8\n",
			"missing a name",
		},
		{
			"missing field type",
			"package: p\nbitfields:\n  - name: R\n    width: 8\n    fields:\n      - name: A\n",
			"missing a type",
		},
		{
			"duplicate names",
			"package: p\nbitfields:\n  - name: R\n    width: 8\n    fields:\n      - name: A\n        type: uint8\n  - name: R\n    width: 8\n    fields:\n      - name: A\n        type: uint8\n",
			"duplicate bitfield name: R",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			_, err = f.Normalize("x.yaml")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestNormalizeIgnoredField(t *testing.T) {
	doc := `
package: regs
bitfields:
  - name: R
    width: 8
    fields:
      - name: A
        type: uint8
      - name: Note
        type: string
        ignore: true
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	containers, err := f.Normalize("r.yaml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	c := containers[0]
	if len(c.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(c.Fields))
	}
	if c.Fields[1].Role != Ignored {
		t.Errorf("Note role = %v, want ignored", c.Fields[1].Role)
	}
	packed := c.Packed()
	if len(packed) != 1 || packed[0].Name != "A" {
		t.Errorf("Packed() = %v", packed)
	}
}
