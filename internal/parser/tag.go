package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

// FieldTag is a parsed bits struct tag.
type FieldTag struct {
	WidthBits uint            // 0 if unset; the field type's natural width applies
	Default   *schema.Default // nil if the field has no default value
	Access    schema.Access
	HasAccess bool // access= was written explicitly
	Ignore    bool // bits:"-"
}

// ParseTag parses bits struct tags
//
// Semantics:
//   - ""                      : packed field, natural width of its type
//   - "4"                     : packed field occupying 4 bits
//   - "4,default=0x3"         : 4 bits, default value 0x3
//   - "default=initialMode()" : natural width, expression default
//   - "8,access=ro"           : 8 bits, getter only
//   - "-"                     : excluded from packing, kept as a plain field
//
// default= must be the last item: its value runs to the end of the tag, so
// expressions may contain commas.
//
// Examples:
//
//	`bits:"4"`                        → 4-bit field
//	`bits:"1,default=true"`           → flag set by constructors
//	`bits:"4,access=wo"`              → no getter
//	`bits:"8,default=Mode(1)"`        → expression default, not range-checked
//	`bits:"-"`                        → ordinary struct field
func ParseTag(tag string) (*FieldTag, error) {
	f := &FieldTag{Access: schema.ReadWrite}

	if tag == "-" {
		f.Ignore = true
		return f, nil
	}

	// Split off the default first: its value runs to the end of the tag.
	rest := tag
	if i := strings.Index(tag, "default="); i == 0 || (i > 0 && tag[i-1] == ',') {
		value := tag[i+len("default="):]
		def, err := schema.ParseDefault(value)
		if err != nil {
			return nil, err
		}
		f.Default = def
		rest = strings.TrimSuffix(tag[:i], ",")
	}

	if rest == "" {
		return f, nil
	}

	for _, part := range strings.Split(rest, ",") {
		switch {
		case part == "":
			return nil, fmt.Errorf("empty item in tag: %s", tag)

		case strings.HasPrefix(part, "access="):
			value := strings.TrimPrefix(part, "access=")
			if value == "" {
				return nil, fmt.Errorf("access= requires a value")
			}
			access, err := schema.ParseAccess(value)
			if err != nil {
				return nil, err
			}
			if f.HasAccess {
				return nil, fmt.Errorf("duplicate access in tag: %s", tag)
			}
			f.Access = access
			f.HasAccess = true

		default:
			width, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("unknown tag item: %s", part)
			}
			if width <= 0 {
				return nil, fmt.Errorf("width must be positive, got: %d", width)
			}
			if f.WidthBits != 0 {
				return nil, fmt.Errorf("duplicate width in tag: %s", tag)
			}
			f.WidthBits = uint(width)
		}
	}

	return f, nil
}
