package schema

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// Number is a parsed integer literal. Negative values keep their magnitude
// separate so range checks and bit patterns work at any field width.
type Number struct {
	Magnitude uint64
	Negative  bool
}

// ParseNumber parses an integer literal in any Go base form (decimal, 0x,
// 0o, 0b, with underscores), an optional leading minus, or the bool
// literals true and false.
func ParseNumber(s string) (*Number, error) {
	switch s {
	case "true":
		return &Number{Magnitude: 1}, nil
	case "false":
		return &Number{Magnitude: 0}, nil
	}

	text := s
	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	magnitude, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("integer literal exceeds 64 bits: %s", s)
		}
		if _, ferr := strconv.ParseFloat(text, 64); ferr == nil {
			return nil, fmt.Errorf("float literals are not supported: %s", s)
		}
		return nil, fmt.Errorf("invalid integer literal: %s", s)
	}
	if magnitude == 0 {
		negative = false
	}
	return &Number{Magnitude: magnitude, Negative: negative}, nil
}

// Fits reports whether the number is representable in width bits, as a
// two's complement value when signed.
func (n *Number) Fits(width uint, signed bool) bool {
	if width == 0 {
		return false
	}
	if width >= 64 {
		if signed && !n.Negative {
			return n.Magnitude <= 1<<63-1
		}
		if signed && n.Negative {
			return n.Magnitude <= 1<<63
		}
		return !n.Negative
	}
	if signed {
		if n.Negative {
			return n.Magnitude <= 1<<(width-1)
		}
		return n.Magnitude <= 1<<(width-1)-1
	}
	return !n.Negative && n.Magnitude <= 1<<width-1
}

// Pattern returns the number's two's complement bit pattern truncated to
// width bits.
func (n *Number) Pattern(width uint) uint64 {
	var mask uint64
	if width >= 64 {
		mask = ^uint64(0)
	} else {
		mask = 1<<width - 1
	}
	if n.Negative {
		return (^n.Magnitude + 1) & mask
	}
	return n.Magnitude & mask
}

// String renders the signed decimal spelling of the number.
func (n *Number) String() string {
	if n.Negative {
		return "-" + strconv.FormatUint(n.Magnitude, 10)
	}
	return strconv.FormatUint(n.Magnitude, 10)
}

// ParseDefault classifies a default value. Integer and bool literals become
// statically checked literals; any other valid Go expression is kept
// verbatim and emitted unchecked. Floats are rejected outright since no
// field type can hold one.
func ParseDefault(raw string) (*Default, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty default value")
	}
	expr, err := parser.ParseExpr(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid default expression: %s", raw)
	}
	if !isLiteral(expr) {
		return &Default{Expr: raw, Raw: raw}, nil
	}
	n, err := ParseNumber(raw)
	if err != nil {
		return nil, err
	}
	return &Default{Literal: n, Raw: raw}, nil
}

// isLiteral reports whether expr is a plain numeric or bool literal, with
// an optional leading minus. Only these are range-checked statically.
func isLiteral(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Kind == token.INT || e.Kind == token.FLOAT
	case *ast.UnaryExpr:
		if e.Op != token.SUB {
			return false
		}
		lit, ok := e.X.(*ast.BasicLit)
		return ok && (lit.Kind == token.INT || lit.Kind == token.FLOAT)
	case *ast.Ident:
		return e.Name == "true" || e.Name == "false"
	}
	return false
}
