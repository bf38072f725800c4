// Package schema defines the source-independent model of a bitfield
// container. Both the Go annotation parser and the YAML schema loader
// produce this model; the analyzer and generator consume it.
package schema

// Gen selects which accessor surfaces are generated for a container.
type Gen struct {
	New      bool `default:"true"`
	FromBits bool `default:"true"`
	IntoBits bool `default:"true"`
	Marshal  bool `default:"true"`
	String   bool `default:"true"`
	Builder  bool `default:"true"`
	BitOps   bool `default:"false"`
}

// DefaultGen returns the default generation toggles: everything on except
// the per-bit operations.
func DefaultGen() Gen {
	return Gen{
		New:      true,
		FromBits: true,
		IntoBits: true,
		Marshal:  true,
		String:   true,
		Builder:  true,
		BitOps:   false,
	}
}

// Container is one bitfield struct declaration.
type Container struct {
	// TypeName is the generated struct's name.
	TypeName string
	// WidthBits is the backing width: 8, 16, 32, 64, or 128.
	WidthBits uint
	// Order places the first declared field at the low (lsb) or high
	// (msb) end of the container.
	Order Order
	// From is the byte order assumed by FromBits and UnmarshalBinary.
	From Endian
	// Into is the byte order produced by IntoBits and MarshalBinary.
	Into Endian
	// Gen selects the generated surfaces.
	Gen Gen
	// Fields in declaration order, ignored fields included.
	Fields []*Field

	// SourceFile is the file the declaration came from, for diagnostics.
	SourceFile string
}

// Packed returns the fields that occupy bits, in declaration order.
func (c *Container) Packed() []*Field {
	packed := make([]*Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Role != Ignored {
			packed = append(packed, f)
		}
	}
	return packed
}

// Field is one declared field of a container.
type Field struct {
	// Name as declared, underscore prefix included for padding.
	Name string
	// TypeName is the declared Go type.
	TypeName string
	// Kind classifies TypeName.
	Kind Kind
	// WidthBits is the field's width. Zero means unset; the analyzer
	// substitutes the kind's natural width.
	WidthBits uint
	// Access is the accessor policy. Padding and ignored fields have no
	// accessors regardless.
	Access Access
	// Role is the packing role.
	Role Role
	// Default is the field's default value, or nil.
	Default *Default
}

// Default is a field default. Exactly one of Literal and Expr is set.
type Default struct {
	// Literal is a statically checked numeric or bool literal.
	Literal *Number
	// Expr is a constant or call expression emitted verbatim into the
	// constructor. Expressions are not range-checked at generation time.
	Expr string
	// Raw is the default's source spelling, for diagnostics.
	Raw string
}
