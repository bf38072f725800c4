package codegen

import (
	"fmt"
	"go/format"
	"log"
	"strings"

	"github.com/alexhholmes/bitfieldgen/internal/analyzer"
)

// marker is the first line of every generated file, in the form the Go
// tooling recognizes.
const marker = "// Code generated by bitfieldgen. DO NOT EDIT."

// Options adjusts the generated file around the container declarations.
type Options struct {
	// Header is an extra comment line placed under the generated-code
	// marker, e.g. a company banner.
	Header string
	// PackageDoc emits a package comment above the package clause. Only
	// one file per package should carry it.
	PackageDoc bool
}

// GenerateFile renders one complete generated source file holding every
// layout from a single input. The result is gofmt-formatted; if formatting
// fails the unformatted source is returned so the error surfaces at compile
// time instead of vanishing with the file.
func GenerateFile(pkgName string, layouts []*analyzer.Layout, opts Options) ([]byte, error) {
	if pkgName == "" {
		return nil, fmt.Errorf("package name is empty")
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no bitfield containers to generate")
	}

	var needs needSet
	bodies := make([]string, 0, len(layouts))
	for _, l := range layouts {
		g := NewGenerator(l)
		body, err := g.Generate()
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
		needs.merge(g.needs)
	}

	var src strings.Builder
	src.WriteString(marker + "\n")
	if opts.Header != "" {
		src.WriteString("// " + opts.Header + "\n")
	}
	src.WriteString("\n")
	if opts.PackageDoc {
		src.WriteString(fmt.Sprintf("// Package %s contains bitfield accessors generated by bitfieldgen.\n", pkgName))
	}
	src.WriteString("package " + pkgName + "\n\n")
	if imports := importBlock(needs); imports != "" {
		src.WriteString(imports + "\n")
	}
	src.WriteString(strings.Join(bodies, "\n"))

	formatted, err := format.Source([]byte(src.String()))
	if err != nil {
		log.Printf("warning: generated code for package %s is not valid Go: %v", pkgName, err)
		return []byte(src.String()), nil
	}
	return formatted, nil
}

// importBlock renders the import declaration for the given demands, stdlib
// first, the runtime package in its own group.
func importBlock(needs needSet) string {
	var std []string
	if needs.binaryPkg {
		std = append(std, "encoding/binary")
	}
	if needs.fmtPkg {
		std = append(std, "fmt")
	}
	if needs.mathBits {
		std = append(std, "math/bits")
	}
	if len(std) == 0 && !needs.bitcodecPkg {
		return ""
	}

	var b strings.Builder
	b.WriteString("import (\n")
	for _, path := range std {
		b.WriteString("\t\"" + path + "\"\n")
	}
	if needs.bitcodecPkg {
		if len(std) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\t\"" + bitcodecImport + "\"\n")
	}
	b.WriteString(")\n")
	return b.String()
}
