package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

// File holds the bitfield declarations extracted from one Go source file.
type File struct {
	// Package is the file's package name, reused for generated output.
	Package string
	// Containers are the structs annotated with @bitfield, in source order.
	Containers []*schema.Container
	// Aliases maps named types declared in the file to their underlying
	// type name, so `type Mode uint8` resolves as a uint8 field.
	Aliases map[string]string
}

// ParseFile parses a Go source file and extracts structs with @bitfield
// annotations.
func ParseFile(filename string) (*File, error) {
	return ParseSource(filename, nil)
}

// ParseSource is ParseFile over in-memory source. src takes anything
// go/parser accepts; nil reads the file.
func ParseSource(filename string, src any) (*File, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return ExtractFromFile(file, filename)
}

// ExtractFromFile extracts bitfield declarations from already-parsed
// syntax. The package loader shares this path with single-file parsing.
func ExtractFromFile(file *ast.File, filename string) (*File, error) {
	f := &File{
		Package: file.Name.Name,
		Aliases: make(map[string]string),
	}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			// Non-struct type declarations feed the alias table so named
			// primitive types resolve to their underlying kind.
			if ident, ok := typeSpec.Type.(*ast.Ident); ok {
				f.Aliases[typeSpec.Name.Name] = ident.Name
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			// The annotation may sit on the declaration group or on the
			// individual TypeSpec inside it.
			anno, err := extractAnnotation(genDecl.Doc, typeSpec.Doc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}
			if anno == nil {
				continue // No @bitfield, skip this type
			}

			fields, err := extractFields(structType)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}

			container := &schema.Container{
				TypeName:   typeSpec.Name.Name,
				WidthBits:  anno.WidthBits,
				Order:      anno.Order,
				From:       anno.From,
				Into:       anno.Into,
				Gen:        anno.Gen,
				Fields:     fields,
				SourceFile: filename,
			}
			if err := validateStructFields(container); err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}

			f.Containers = append(f.Containers, container)
		}
	}

	return f, nil
}

func extractAnnotation(docs ...*ast.CommentGroup) (*Annotation, error) {
	for _, doc := range docs {
		if doc == nil {
			continue
		}

		// Extract comment text lines
		var lines []string
		for _, comment := range doc.List {
			lines = append(lines, CleanComment(comment.Text))
		}

		anno, found, err := FindAnnotation(lines)
		if err != nil {
			return nil, err
		}
		if found {
			return anno, nil
		}
	}

	return nil, nil
}

func extractFields(structType *ast.StructType) ([]*schema.Field, error) {
	var fields []*schema.Field

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded fields are not supported")
		}

		var tagValue string
		hasTag := false
		if field.Tag != nil {
			tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
			tagValue, hasTag = tag.Lookup("bits")
		}

		typeName := typeToString(field.Type)

		// `A, B uint8` declares two fields sharing a type and tag.
		for _, name := range field.Names {
			f := &schema.Field{
				Name:     name.Name,
				TypeName: typeName,
				Kind:     schema.KindOf(typeName),
			}

			// Untagged fields ride along as plain struct fields.
			if !hasTag {
				f.Role = schema.Ignored
				fields = append(fields, f)
				continue
			}

			parsed, err := ParseTag(tagValue)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name.Name, err)
			}

			if parsed.Ignore {
				f.Role = schema.Ignored
				fields = append(fields, f)
				continue
			}

			if _, isIdent := field.Type.(*ast.Ident); !isIdent {
				return nil, fmt.Errorf("field %s: type %s cannot be packed", name.Name, typeName)
			}

			if strings.HasPrefix(name.Name, "_") {
				f.Role = schema.Padding
				if parsed.HasAccess {
					return nil, fmt.Errorf("padding field %s cannot specify access", name.Name)
				}
			}

			f.WidthBits = parsed.WidthBits
			f.Default = parsed.Default
			f.Access = parsed.Access
			fields = append(fields, f)
		}
	}

	return fields, nil
}

// validateStructFields rejects annotated structs whose field set cannot
// form a bitfield regardless of widths.
func validateStructFields(c *schema.Container) error {
	if len(c.Packed()) == 0 {
		return fmt.Errorf("bitfield struct has no packed fields")
	}
	return nil
}

// typeToString converts an AST type expression to a string. Packed fields
// only allow plain identifiers; the rest appear on ignored fields.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, Mode, etc.
		return t.Name

	case *ast.SelectorExpr:
		// Qualified type: time.Duration (ignored fields only)
		return typeToString(t.X) + "." + t.Sel.Name

	case *ast.ArrayType:
		if t.Len == nil {
			// Slice: []byte
			return "[]" + typeToString(t.Elt)
		}
		// Array: [8]byte
		return fmt.Sprintf("[%s]%s", exprToString(t.Len), typeToString(t.Elt))

	case *ast.StarExpr:
		// Pointer: *Node
		return "*" + typeToString(t.X)

	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", typeToString(t.Key), typeToString(t.Value))

	default:
		return "unknown"
	}
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	default:
		return "?"
	}
}
