package schema

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// NodeError decorates a schema error with the position of the YAML node it
// came from.
type NodeError struct {
	Node *yaml.Node
	Err  error
}

func (e NodeError) Error() string {
	return fmt.Sprintf("line %d:%d: %v", e.Node.Line, e.Node.Column, e.Err)
}

func (e NodeError) Unwrap() error { return e.Err }

func nodeErrorf(node *yaml.Node, format string, args ...any) error {
	return NodeError{Node: node, Err: fmt.Errorf(format, args...)}
}

// File is a top-level schema document.
type File struct {
	Package   string          `yaml:"package"`
	Bitfields []*ContainerDoc `yaml:"bitfields"`
}

// ContainerDoc is one bitfield entry as written in a schema file. The
// generation toggles are pointers so an explicit false survives the
// defaulting pass.
type ContainerDoc struct {
	Name       string      `yaml:"name"`
	Width      uint        `yaml:"width"`
	Order      Order       `yaml:"order"`
	FromEndian Endian      `yaml:"from_endian"`
	IntoEndian Endian      `yaml:"into_endian"`
	New        *bool       `yaml:"new" default:"true"`
	FromBits   *bool       `yaml:"from_bits" default:"true"`
	IntoBits   *bool       `yaml:"into_bits" default:"true"`
	Marshal    *bool       `yaml:"marshal" default:"true"`
	Stringer   *bool       `yaml:"string" default:"true"`
	Builder    *bool       `yaml:"builder" default:"true"`
	BitOps     *bool       `yaml:"bit_ops" default:"false"`
	Fields     []*FieldDoc `yaml:"fields"`
}

// FieldDoc is one field entry. Default keeps its source node so the written
// spelling (base prefix included) reaches diagnostics and generated code
// intact.
type FieldDoc struct {
	Name    string     `yaml:"name"`
	Type    string     `yaml:"type"`
	Bits    uint       `yaml:"bits"`
	Default *yaml.Node `yaml:"default"`
	Access  Access     `yaml:"access"`
	Ignore  bool       `yaml:"ignore"`
}

// Parse decodes a schema document. Unknown keys are rejected, and the
// generation toggles are defaulted after decoding so values written in the
// document win.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if err := defaults.Set(&f); err != nil {
		return nil, fmt.Errorf("applying schema defaults: %w", err)
	}
	return &f, nil
}

// Normalize converts the document into the shared container model.
// Semantic validation happens later in the analyzer; Normalize only
// rejects what has no model representation.
func (f *File) Normalize(sourceFile string) ([]*Container, error) {
	if f.Package == "" {
		return nil, errors.New("schema is missing a package name")
	}
	if len(f.Bitfields) == 0 {
		return nil, errors.New("schema declares no bitfields")
	}

	seen := make(map[string]bool)
	containers := make([]*Container, 0, len(f.Bitfields))
	for _, doc := range f.Bitfields {
		c, err := doc.normalize(sourceFile)
		if err != nil {
			return nil, err
		}
		if seen[c.TypeName] {
			return nil, fmt.Errorf("duplicate bitfield name: %s", c.TypeName)
		}
		seen[c.TypeName] = true
		containers = append(containers, c)
	}
	return containers, nil
}

func (d *ContainerDoc) normalize(sourceFile string) (*Container, error) {
	if d.Name == "" {
		return nil, errors.New("bitfield entry is missing a name")
	}

	c := &Container{
		TypeName:   d.Name,
		WidthBits:  d.Width,
		Order:      d.Order,
		From:       d.FromEndian,
		Into:       d.IntoEndian,
		SourceFile: sourceFile,
		Gen: Gen{
			New:      enabled(d.New, true),
			FromBits: enabled(d.FromBits, true),
			IntoBits: enabled(d.IntoBits, true),
			Marshal:  enabled(d.Marshal, true),
			String:   enabled(d.Stringer, true),
			Builder:  enabled(d.Builder, true),
			BitOps:   enabled(d.BitOps, false),
		},
	}

	for _, fd := range d.Fields {
		f, err := fd.normalize(d.Name)
		if err != nil {
			return nil, err
		}
		c.Fields = append(c.Fields, f)
	}
	return c, nil
}

func (d *FieldDoc) normalize(container string) (*Field, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%s: field entry is missing a name", container)
	}
	if d.Type == "" {
		return nil, fmt.Errorf("%s.%s: field entry is missing a type", container, d.Name)
	}

	f := &Field{
		Name:      d.Name,
		TypeName:  d.Type,
		Kind:      KindOf(d.Type),
		WidthBits: d.Bits,
		Access:    d.Access,
		Role:      Normal,
	}
	switch {
	case d.Ignore:
		f.Role = Ignored
	case strings.HasPrefix(d.Name, "_"):
		f.Role = Padding
	}

	if d.Default != nil {
		if d.Default.Kind != yaml.ScalarNode {
			return nil, nodeErrorf(d.Default, "%s.%s: default must be a scalar", container, d.Name)
		}
		def, err := ParseDefault(d.Default.Value)
		if err != nil {
			return nil, nodeErrorf(d.Default, "%s.%s: %v", container, d.Name, err)
		}
		f.Default = def
	}
	return f, nil
}

// enabled dereferences a toggle pointer, falling back when the defaulting
// pass never ran.
func enabled(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
