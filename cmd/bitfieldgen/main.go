package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexhholmes/bitfieldgen/internal/analyzer"
	"github.com/alexhholmes/bitfieldgen/internal/codegen"
	"github.com/alexhholmes/bitfieldgen/internal/config"
	"github.com/alexhholmes/bitfieldgen/internal/loader"
	"github.com/alexhholmes/bitfieldgen/internal/parser"
	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

var (
	pkgPattern = flag.String("pkg", "", "generate for the packages matching `pattern` instead of single files")
	output     = flag.String("o", "", "write generated code to `path` (single input only)")
	printOnly  = flag.Bool("print", false, "print the resolved layouts instead of generating")
	configPath = flag.String("config", "", "read tool configuration from `path`")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *pkgPattern == "" && flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <file.go | schema.yaml> ...\n", os.Args[0])
	flag.PrintDefaults()
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if *pkgPattern != "" {
		if len(args) > 0 {
			return fmt.Errorf("-pkg and file arguments are mutually exclusive")
		}
		return runPackages(cfg, *pkgPattern)
	}

	if *output != "" && len(args) > 1 {
		return fmt.Errorf("-o requires exactly one input file")
	}
	for _, arg := range args {
		if err := runFile(cfg, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}

func loadConfig() (config.Config, error) {
	if *configPath != "" {
		return config.Load(*configPath)
	}
	return config.LoadDefault()
}

func runFile(cfg config.Config, path string) error {
	switch ext := filepath.Ext(path); ext {
	case ".go":
		return runGoFile(cfg, path)
	case ".yaml", ".yml":
		return runSchemaFile(cfg, path)
	default:
		return fmt.Errorf("unsupported input type %s", ext)
	}
}

func runGoFile(cfg config.Config, path string) error {
	file, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	if len(file.Containers) == 0 {
		return fmt.Errorf("no @bitfield declarations found")
	}

	registry := analyzer.NewTypeRegistry()
	for alias, underlying := range file.Aliases {
		registry.RegisterAlias(alias, underlying)
	}
	for _, c := range file.Containers {
		registry.RegisterCustom(c.TypeName, c.WidthBits)
	}

	layouts, err := analyzeAll(file.Containers, registry)
	if err != nil {
		return err
	}
	if *printOnly {
		printLayouts(layouts)
		return nil
	}
	return writeOutput(cfg, file.Package, layouts, defaultOutput(cfg, path))
}

func runSchemaFile(cfg config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := schema.Parse(f)
	if err != nil {
		return err
	}
	containers, err := doc.Normalize(path)
	if err != nil {
		return err
	}

	registry := analyzer.NewTypeRegistry()
	for _, c := range containers {
		registry.RegisterCustom(c.TypeName, c.WidthBits)
	}

	layouts, err := analyzeAll(containers, registry)
	if err != nil {
		return err
	}
	if *printOnly {
		printLayouts(layouts)
		return nil
	}
	return writeOutput(cfg, doc.Package, layouts, defaultOutput(cfg, path))
}

func runPackages(cfg config.Config, pattern string) error {
	pkgs, err := loader.Load(pattern)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no @bitfield declarations found in %s", pattern)
	}
	if *output != "" && len(pkgs) > 1 {
		return fmt.Errorf("-o requires exactly one package, matched %d", len(pkgs))
	}

	for _, p := range pkgs {
		if *printOnly {
			printLayouts(p.Layouts)
			continue
		}
		path := filepath.Join(p.Dir, p.Name+cfg.Suffix+".go")
		if err := writeOutput(cfg, p.Name, p.Layouts, path); err != nil {
			return err
		}
	}
	return nil
}

// analyzeAll resolves every container, collecting diagnostics across all of
// them before failing.
func analyzeAll(containers []*schema.Container, registry *analyzer.TypeRegistry) ([]*analyzer.Layout, error) {
	var layouts []*analyzer.Layout
	var problems []string
	for _, c := range containers {
		layout, err := analyzer.Analyze(c, registry)
		if err != nil {
			for _, msg := range layout.Errors {
				problems = append(problems, fmt.Sprintf("%s: %s", c.TypeName, msg))
			}
			continue
		}
		layouts = append(layouts, layout)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "\n"))
	}
	return layouts, nil
}

func writeOutput(cfg config.Config, pkgName string, layouts []*analyzer.Layout, path string) error {
	src, err := codegen.GenerateFile(pkgName, layouts, codegen.Options{
		Header:     cfg.Header,
		PackageDoc: cfg.PackageDoc,
	})
	if err != nil {
		return err
	}
	if *output != "" {
		path = *output
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// defaultOutput places generated code next to its input: ctrl.go becomes
// ctrl_bitfield.go under the default suffix.
func defaultOutput(cfg config.Config, path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + cfg.Suffix + ".go"
}

// printLayouts renders the resolved layout table, one line per field with
// its bit placement.
func printLayouts(layouts []*analyzer.Layout) {
	for _, l := range layouts {
		c := l.Container
		fmt.Printf("\n%s (width=%d, order=%s, from=%s, into=%s)\n",
			l.TypeName, l.WidthBits, c.Order, c.From, c.Into)
		fmt.Println("Fields:")
		for _, f := range l.Fields {
			fmt.Printf("  %-15s %-10s @%-3d %2d bits  %s", f.Field.Name, f.Field.TypeName, f.Offset, f.Width, f.Field.Access)
			if f.Field.Role == schema.Padding {
				fmt.Printf("  padding")
			}
			if f.Field.Default != nil {
				fmt.Printf("  default=%s", f.Field.Default.Raw)
			}
			fmt.Println()
		}
		for _, f := range l.Ignored {
			fmt.Printf("  %-15s %-10s ignored\n", f.Name, f.TypeName)
		}
	}
}
