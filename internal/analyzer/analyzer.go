package analyzer

import (
	"fmt"
	"go/token"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

// ResolvedField is a packed field with its position in the container.
type ResolvedField struct {
	Field *schema.Field
	// Offset is the field's distance from bit 0 of the container,
	// regardless of declaration order.
	Offset uint
	// Width is the resolved width in bits.
	Width uint
	// Kind is the resolved kind, aliases collapsed onto their primitive.
	Kind schema.Kind
}

// Layout is an analyzed container with every field placed.
type Layout struct {
	TypeName  string
	WidthBits uint
	Container *schema.Container
	// Fields are the packed fields in declaration order.
	Fields []ResolvedField
	// Ignored are the fields carried as plain struct fields.
	Ignored []*schema.Field
	Errors  []string // Validation errors
}

// Analyze resolves field widths and bit offsets for a container and
// validates it against the packing rules.
func Analyze(c *schema.Container, registry *TypeRegistry) (*Layout, error) {
	if c == nil {
		return nil, fmt.Errorf("container is nil")
	}
	if registry == nil {
		registry = NewTypeRegistry()
	}

	l := &Layout{
		TypeName:  c.TypeName,
		WidthBits: c.WidthBits,
		Container: c,
	}

	// Phase 1: container-level checks. Offsets depend on the width, so a
	// bad width stops analysis here.
	if !token.IsIdentifier(c.TypeName) {
		l.Errors = append(l.Errors, fmt.Sprintf("invalid type name: %q", c.TypeName))
	}
	if !schema.ValidContainerWidth(c.WidthBits) {
		l.Errors = append(l.Errors, fmt.Sprintf("width must be 8, 16, 32, 64, or 128, got: %d", c.WidthBits))
	}
	if len(l.Errors) > 0 {
		return l, fmt.Errorf("bitfield has %d errors", len(l.Errors))
	}

	// Phase 2: resolve each field
	for _, field := range c.Fields {
		if field.Role == schema.Ignored {
			if err := checkIgnored(field); err != nil {
				l.Errors = append(l.Errors, fmt.Sprintf("%s: %v", field.Name, err))
				continue
			}
			l.Ignored = append(l.Ignored, field)
			continue
		}

		resolved, err := resolveField(field, c.WidthBits, registry)
		if err != nil {
			l.Errors = append(l.Errors, fmt.Sprintf("%s: %v", field.Name, err))
			continue
		}
		l.Fields = append(l.Fields, resolved)
	}

	if len(l.Errors) > 0 {
		return l, fmt.Errorf("bitfield has %d errors", len(l.Errors))
	}

	// Phase 3: widths must fill the container exactly
	var total uint
	for _, f := range l.Fields {
		total += f.Width
	}
	if total != c.WidthBits {
		if total < c.WidthBits {
			l.Errors = append(l.Errors,
				fmt.Sprintf("total field width is %d bits but the container holds %d; add a padding field (leading underscore) to fill the gap",
					total, c.WidthBits))
		} else {
			l.Errors = append(l.Errors,
				fmt.Sprintf("total field width is %d bits but the container holds only %d",
					total, c.WidthBits))
		}
		return l, fmt.Errorf("bitfield has %d errors", len(l.Errors))
	}

	// Phase 4: assign offsets from the declaration cursor
	var cursor uint
	for i := range l.Fields {
		f := &l.Fields[i]
		if c.Order == schema.MSBFirst {
			f.Offset = c.WidthBits - f.Width - cursor
		} else {
			f.Offset = cursor
		}
		cursor += f.Width
	}

	// Phase 5: duplicate names collide in the generated type
	detectDuplicates(l)

	if len(l.Errors) > 0 {
		return l, fmt.Errorf("bitfield has %d errors", len(l.Errors))
	}

	return l, nil
}

func resolveField(field *schema.Field, containerBits uint, registry *TypeRegistry) (ResolvedField, error) {
	r := ResolvedField{Field: field, Kind: field.Kind}

	if field.Role == schema.Padding && field.Access != schema.ReadWrite {
		return r, fmt.Errorf("padding field cannot specify access")
	}

	// Resolve the kind, collapsing aliases onto primitives
	natural := uint(0)
	switch field.Kind {
	case schema.KindInvalid:
		return r, fmt.Errorf("type %s is not supported", field.TypeName)

	case schema.KindCustom:
		resolved := registry.ResolveType(field.TypeName)
		kind := schema.KindOf(resolved)
		switch kind {
		case schema.KindInvalid:
			return r, fmt.Errorf("type %s resolves to unsupported type %s", field.TypeName, resolved)
		case schema.KindCustom:
			if !token.IsIdentifier(field.TypeName) {
				return r, fmt.Errorf("invalid type name: %q", field.TypeName)
			}
			// Width may come from a registered container type; otherwise
			// the declaration must spell it out.
			if w, ok := registry.CustomWidth(resolved); ok {
				natural = w
			}
		default:
			r.Kind = kind
			natural = kind.NaturalWidth()
		}

	default:
		natural = field.Kind.NaturalWidth()
	}

	// Resolve the width
	width := field.WidthBits
	if width == 0 {
		width = natural
	}
	if width == 0 {
		return r, fmt.Errorf("custom type %s requires an explicit width", field.TypeName)
	}
	if r.Kind != schema.KindCustom && width > natural {
		return r, fmt.Errorf("type %s (%d bits) cannot hold %d bits", field.TypeName, natural, width)
	}
	if r.Kind == schema.KindCustom && natural != 0 && width != natural {
		return r, fmt.Errorf("type %s is %d bits wide, field declares %d", field.TypeName, natural, width)
	}
	if width > 64 {
		return r, fmt.Errorf("fields wider than 64 bits are not supported")
	}
	if width > containerBits {
		return r, fmt.Errorf("width %d exceeds the %d-bit container", width, containerBits)
	}
	r.Width = width

	// Literal defaults are checked against the field's range here;
	// expression defaults are emitted as written and checked by the
	// compiler only.
	if field.Default != nil && field.Default.Literal != nil {
		if !field.Default.Literal.Fits(width, r.Kind.Signed()) {
			return r, fmt.Errorf("default value %s does not fit in %d bits", field.Default.Raw, width)
		}
	}

	return r, nil
}

// checkIgnored rejects packing attributes on fields excluded from packing.
func checkIgnored(field *schema.Field) error {
	if field.WidthBits != 0 {
		return fmt.Errorf("ignored field cannot have a width")
	}
	if field.Default != nil {
		return fmt.Errorf("ignored field cannot have a default")
	}
	if field.Access != schema.ReadWrite {
		return fmt.Errorf("ignored field cannot specify access")
	}
	return nil
}

// detectDuplicates flags repeated field names. Padding fields are exempt:
// they generate no accessors, and repeating a name like _ or _pad is fine.
func detectDuplicates(l *Layout) {
	seen := make(map[string]string)

	check := func(name, what string) {
		if prev, ok := seen[name]; ok {
			l.Errors = append(l.Errors,
				fmt.Sprintf("duplicate field name %s (%s and %s)", name, prev, what))
			return
		}
		seen[name] = what
	}

	for _, f := range l.Fields {
		if f.Field.Role == schema.Padding {
			continue
		}
		check(f.Field.Name, "packed field")
	}
	for _, f := range l.Ignored {
		check(f.Name, "ignored field")
	}
}

// IsValid returns true if the layout has no errors
func (l *Layout) IsValid() bool {
	return len(l.Errors) == 0
}
