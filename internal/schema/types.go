package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the declared type of a field.
type Kind int

const (
	KindInvalid Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindBool
	KindCustom // named type bridged through FromBits/IntoBits
)

// KindOf maps a Go type name to its kind. Unknown identifiers are custom
// kinds; builtin types with no defined bit layout (uint, int, uintptr,
// floats, strings) are invalid.
func KindOf(typeName string) Kind {
	switch typeName {
	case "uint8", "byte":
		return KindUint8
	case "uint16":
		return KindUint16
	case "uint32":
		return KindUint32
	case "uint64":
		return KindUint64
	case "int8":
		return KindInt8
	case "int16":
		return KindInt16
	case "int32", "rune":
		return KindInt32
	case "int64":
		return KindInt64
	case "bool":
		return KindBool
	case "uint", "int", "uintptr", "float32", "float64",
		"complex64", "complex128", "string", "error", "any":
		return KindInvalid
	}
	return KindCustom
}

// Signed reports whether the kind decodes with sign extension.
func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// NaturalWidth returns the kind's width in bits when no explicit width is
// given. Custom kinds have no natural width and return 0.
func (k Kind) NaturalWidth() uint {
	switch k {
	case KindUint8, KindInt8:
		return 8
	case KindUint16, KindInt16:
		return 16
	case KindUint32, KindInt32:
		return 32
	case KindUint64, KindInt64:
		return 64
	case KindBool:
		return 1
	}
	return 0
}

// ContainerWidths lists the supported backing widths in bits.
var ContainerWidths = []uint{8, 16, 32, 64, 128}

// ValidContainerWidth reports whether w is a supported backing width.
func ValidContainerWidth(w uint) bool {
	for _, cw := range ContainerWidths {
		if w == cw {
			return true
		}
	}
	return false
}

// Order determines whether the first declared field occupies the low or the
// high end of the container.
type Order int

const (
	LSBFirst Order = iota
	MSBFirst
)

func (o Order) String() string {
	if o == MSBFirst {
		return "msb"
	}
	return "lsb"
}

// ParseOrder parses "lsb" or "msb". The empty string is the default, lsb.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "lsb":
		return LSBFirst, nil
	case "msb":
		return MSBFirst, nil
	}
	return 0, fmt.Errorf("order must be 'lsb' or 'msb', got: %s", s)
}

// UnmarshalYAML decodes an order from its schema-file spelling.
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseOrder(node.Value)
	if err != nil {
		return nodeErrorf(node, "%v", err)
	}
	*o = parsed
	return nil
}

// Endian is a byte-order transform applied to the whole raw representation.
type Endian int

const (
	Big Endian = iota
	Little
)

func (e Endian) String() string {
	if e == Little {
		return "little"
	}
	return "big"
}

// ParseEndian parses "big" or "little". The empty string is the default, big.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(s) {
	case "", "big":
		return Big, nil
	case "little":
		return Little, nil
	}
	return 0, fmt.Errorf("endian must be 'big' or 'little', got: %s", s)
}

// UnmarshalYAML decodes an endianness from its schema-file spelling.
func (e *Endian) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseEndian(node.Value)
	if err != nil {
		return nodeErrorf(node, "%v", err)
	}
	*e = parsed
	return nil
}

// Access is a field's accessor policy. NoAccess fields still occupy bits;
// only their accessor generation is suppressed.
type Access int

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
	NoAccess
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "ro"
	case WriteOnly:
		return "wo"
	case NoAccess:
		return "none"
	}
	return "rw"
}

// Readable reports whether a getter is generated.
func (a Access) Readable() bool {
	return a == ReadWrite || a == ReadOnly
}

// Writable reports whether setters are generated.
func (a Access) Writable() bool {
	return a == ReadWrite || a == WriteOnly
}

// ParseAccess parses "rw", "ro", "wo", or "none". The empty string is the
// default, rw.
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(s) {
	case "", "rw":
		return ReadWrite, nil
	case "ro":
		return ReadOnly, nil
	case "wo":
		return WriteOnly, nil
	case "none":
		return NoAccess, nil
	}
	return 0, fmt.Errorf("access must be 'rw', 'ro', 'wo', or 'none', got: %s", s)
}

// UnmarshalYAML decodes an access mode from its schema-file spelling.
func (a *Access) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseAccess(node.Value)
	if err != nil {
		return nodeErrorf(node, "%v", err)
	}
	*a = parsed
	return nil
}

// Role is a field's packing role.
type Role int

const (
	// Normal fields are packed and accessible per their access mode.
	Normal Role = iota
	// Padding fields are packed but never accessible; they always carry
	// their default (or zero). Declared with a leading underscore.
	Padding
	// Ignored fields are excluded from packing and carried as ordinary
	// struct fields on the generated type.
	Ignored
)

func (r Role) String() string {
	switch r {
	case Padding:
		return "padding"
	case Ignored:
		return "ignored"
	}
	return "normal"
}
