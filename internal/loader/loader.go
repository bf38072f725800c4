// Package loader resolves bitfield declarations across whole packages.
// Single-file parsing sees one file and trusts the conversion conventions;
// the loader sees the type-checked package and proves them.
package loader

import (
	"fmt"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/alexhholmes/bitfieldgen/internal/analyzer"
	"github.com/alexhholmes/bitfieldgen/internal/parser"
	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

// Package is one loaded Go package with its analyzed bitfield layouts.
type Package struct {
	// Name is the package name generated files belong to.
	Name string
	// Dir is the package directory, where generated files are written.
	Dir string
	// Layouts are the analyzed containers in source order.
	Layouts []*analyzer.Layout
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// Load type-checks the packages matching pattern and returns those that
// declare bitfield containers.
func Load(pattern string) ([]*Package, error) {
	cfg := &packages.Config{Mode: loadMode}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s", pattern)
	}

	var out []*Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("loading %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		p, err := analyzePackage(pkg)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// analyzePackage extracts and analyzes every container in one package.
// Packages without bitfield declarations return nil.
func analyzePackage(pkg *packages.Package) (*Package, error) {
	var containers []*schema.Container
	for _, file := range pkg.Syntax {
		name := pkg.Fset.Position(file.Pos()).Filename
		extracted, err := parser.ExtractFromFile(file, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		containers = append(containers, extracted.Containers...)
	}
	if len(containers) == 0 {
		return nil, nil
	}

	// The type checker sees the whole package, so the alias table covers
	// named types from every file, not just the declaring one. Containers
	// register as custom types up front so they can nest in each other.
	registry := analyzer.NewTypeRegistry()
	registerScope(registry, pkg.Types)
	for _, c := range containers {
		registry.RegisterCustom(c.TypeName, c.WidthBits)
	}

	var layouts []*analyzer.Layout
	var problems []string
	for _, c := range containers {
		layout, err := analyzer.Analyze(c, registry)
		if err != nil {
			for _, msg := range layout.Errors {
				problems = append(problems, fmt.Sprintf("%s: %s: %s", c.SourceFile, c.TypeName, msg))
			}
			continue
		}
		problems = append(problems, verifyBridges(pkg.Types, registry, layout)...)
		layouts = append(layouts, layout)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "\n"))
	}

	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	return &Package{Name: pkg.Name, Dir: dir, Layouts: layouts}, nil
}

// registerScope feeds every named type with a packable underlying type into
// the alias table, so a field typed `Speed` resolves even when Speed is
// declared in another file of the package.
func registerScope(registry *analyzer.TypeRegistry, tpkg *types.Package) {
	scope := tpkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		basic, ok := tn.Type().Underlying().(*types.Basic)
		if !ok {
			continue
		}
		if k := schema.KindOf(basic.Name()); k == schema.KindInvalid || k == schema.KindCustom {
			continue
		}
		registry.RegisterAlias(name, basic.Name())
	}
}

// verifyBridges checks that every custom field type satisfies the
// conversion convention: a package-level TFromBits constructor and an
// IntoBits method in the value method set. Containers are exempt; their
// bridge is generated.
func verifyBridges(tpkg *types.Package, registry *analyzer.TypeRegistry, layout *analyzer.Layout) []string {
	var problems []string
	seen := make(map[string]bool)
	for _, f := range layout.Fields {
		if f.Kind != schema.KindCustom || seen[f.Field.TypeName] {
			continue
		}
		seen[f.Field.TypeName] = true
		if _, ok := registry.CustomWidth(f.Field.TypeName); ok {
			continue
		}
		if err := verifyBridge(tpkg, f.Field.TypeName, f.Width); err != nil {
			problems = append(problems,
				fmt.Sprintf("%s: %s.%s: %v", layout.Container.SourceFile, layout.TypeName, f.Field.Name, err))
		}
	}
	return problems
}

func verifyBridge(tpkg *types.Package, typeName string, width uint) error {
	obj := tpkg.Scope().Lookup(typeName)
	if obj == nil {
		return fmt.Errorf("type %s is not declared in this package", typeName)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return fmt.Errorf("%s is not a type", typeName)
	}
	word := types.Typ[wordKind(width)]

	fname := typeName + "FromBits"
	fn, ok := tpkg.Scope().Lookup(fname).(*types.Func)
	if !ok {
		return fmt.Errorf("missing func %s(%s) %s", fname, word, typeName)
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || !types.Identical(sig.Params().At(0).Type(), word) ||
		sig.Results().Len() != 1 || !types.Identical(sig.Results().At(0).Type(), tn.Type()) {
		return fmt.Errorf("%s must have signature func(%s) %s", fname, word, typeName)
	}

	// Generated code calls IntoBits on values that are not addressable, so
	// a pointer receiver does not satisfy the bridge.
	sel := types.NewMethodSet(tn.Type()).Lookup(tpkg, "IntoBits")
	if sel == nil {
		return fmt.Errorf("%s needs an IntoBits() %s method with a value receiver", typeName, word)
	}
	msig := sel.Obj().(*types.Func).Type().(*types.Signature)
	if msig.Params().Len() != 0 || msig.Results().Len() != 1 ||
		!types.Identical(msig.Results().At(0).Type(), word) {
		return fmt.Errorf("%s.IntoBits must have signature func() %s", typeName, word)
	}
	return nil
}

// wordKind is the unsigned kind the bridge travels through for a field
// width, the narrowest one that holds it.
func wordKind(width uint) types.BasicKind {
	switch {
	case width <= 8:
		return types.Uint8
	case width <= 16:
		return types.Uint16
	case width <= 32:
		return types.Uint32
	}
	return types.Uint64
}
