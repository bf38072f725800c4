package codegen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexhholmes/bitfieldgen/internal/analyzer"
	"github.com/alexhholmes/bitfieldgen/internal/schema"
	"github.com/alexhholmes/bitfieldgen/pkg/bitcodec"
)

// bitcodecImport is the runtime package every nontrivial generated file uses.
const bitcodecImport = "github.com/alexhholmes/bitfieldgen/pkg/bitcodec"

// needSet tracks which imports the emitted code demands. Flags are raised at
// the emission sites themselves, so the import block never drifts from the
// bodies.
type needSet struct {
	fmtPkg      bool
	binaryPkg   bool
	mathBits    bool
	bitcodecPkg bool
}

func (n *needSet) merge(o needSet) {
	n.fmtPkg = n.fmtPkg || o.fmtPkg
	n.binaryPkg = n.binaryPkg || o.binaryPkg
	n.mathBits = n.mathBits || o.mathBits
	n.bitcodecPkg = n.bitcodecPkg || o.bitcodecPkg
}

// Generator emits the accessor type for one analyzed bitfield container.
type Generator struct {
	layout *analyzer.Layout
	needs  needSet
}

// NewGenerator creates a generator for an analyzed layout.
func NewGenerator(layout *analyzer.Layout) *Generator {
	return &Generator{layout: layout}
}

// Generate returns the declarations for this container, without the package
// header and imports. Sections are gated by the container's toggles.
func (g *Generator) Generate() (string, error) {
	if g.layout == nil {
		return "", fmt.Errorf("layout is nil")
	}
	if !g.layout.IsValid() {
		return "", fmt.Errorf("%s has %d unresolved layout errors", g.layout.TypeName, len(g.layout.Errors))
	}

	gen := g.layout.Container.Gen
	sections := []string{
		g.generateType(),
		g.generateConstants(),
	}
	if gen.New {
		sections = append(sections, g.generateConstructors())
	}
	sections = append(sections, g.generateAccessors())
	if gen.FromBits {
		sections = append(sections, g.generateFromBits())
	}
	if gen.IntoBits {
		sections = append(sections, g.generateIntoBits())
	}
	if gen.Marshal {
		sections = append(sections, g.generateMarshal())
	}
	sections = append(sections, g.generateEqual())
	if gen.String {
		sections = append(sections, g.generateString())
	}
	if gen.Builder {
		sections = append(sections, g.generateBuilder())
	}
	if gen.BitOps {
		sections = append(sections, g.generateBitOps())
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "\n"), nil
}

func (g *Generator) typeName() string {
	return g.layout.TypeName
}

func (g *Generator) is128() bool {
	return g.layout.WidthBits == 128
}

// rawType is the backing field's type.
func (g *Generator) rawType() string {
	if g.is128() {
		g.needs.bitcodecPkg = true
		return "bitcodec.Uint128"
	}
	return fmt.Sprintf("uint%d", g.layout.WidthBits)
}

// wordType is the unsigned type field values travel through: the raw type
// up to 64 bits, uint64 for 128-bit containers.
func (g *Generator) wordType() string {
	if g.is128() {
		return "uint64"
	}
	return fmt.Sprintf("uint%d", g.layout.WidthBits)
}

func (g *Generator) recv() string {
	r, _ := utf8.DecodeRuneInString(g.typeName())
	r = unicode.ToLower(r)
	if !unicode.IsLetter(r) || r == 'v' || r == 'i' {
		return "x"
	}
	return string(r)
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// methodName builds an accessor name that inherits the field's visibility:
// SetA for an exported field A, setCtrl for an unexported field ctrl.
func methodName(prefix, fieldName string) string {
	name := prefix + upperFirst(fieldName)
	if !exported(fieldName) {
		name = lowerFirst(name)
	}
	return name
}

// fnName builds a package-level function name that inherits the container's
// visibility: NewStatusReg, or newStatusReg for an unexported type.
func (g *Generator) fnName(base string) string {
	t := g.typeName()
	if exported(t) {
		return base + t
	}
	return lowerFirst(base) + upperFirst(t)
}

func (g *Generator) constName(fieldName, suffix string) string {
	t := g.typeName()
	if exported(t) && exported(fieldName) {
		return t + upperFirst(fieldName) + suffix
	}
	return lowerFirst(t) + upperFirst(fieldName) + suffix
}

func smallestUint(width uint) string {
	switch {
	case width <= 8:
		return "uint8"
	case width <= 16:
		return "uint16"
	case width <= 32:
		return "uint32"
	}
	return "uint64"
}

func cast(typ, expr string) string {
	return typ + "(" + expr + ")"
}

func bitsWord(n uint) string {
	if n == 1 {
		return "1 bit"
	}
	return fmt.Sprintf("%d bits", n)
}

// extractExpr renders a field read from src. The offset may be a literal or
// a variable name.
func (g *Generator) extractExpr(src string, offset any, width uint) string {
	g.needs.bitcodecPkg = true
	name := "bitcodec.Extract"
	if g.is128() {
		name = "bitcodec.Extract128"
	}
	return fmt.Sprintf("%s(%s, %v, %d)", name, src, offset, width)
}

// insertExpr renders a field write into src.
func (g *Generator) insertExpr(src string, offset any, width uint, val string) string {
	g.needs.bitcodecPkg = true
	name := "bitcodec.Insert"
	if g.is128() {
		name = "bitcodec.Insert128"
	}
	return fmt.Sprintf("%s(%s, %v, %d, %s)", name, src, offset, width, val)
}

// generateType emits the container struct: the raw backing word plus any
// ignored fields carried alongside it.
func (g *Generator) generateType() string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// %s is a %d-bit bitfield.\n", g.typeName(), g.layout.WidthBits))
	code.WriteString(fmt.Sprintf("type %s struct {\n", g.typeName()))
	code.WriteString(fmt.Sprintf("\traw %s\n", g.rawType()))
	for _, f := range g.layout.Ignored {
		code.WriteString(fmt.Sprintf("\t%s %s\n", f.Name, f.TypeName))
	}
	code.WriteString("}\n")

	return code.String()
}

// generateConstants emits the width and offset of every readable field.
func (g *Generator) generateConstants() string {
	var readable []analyzer.ResolvedField
	for _, f := range g.layout.Fields {
		if f.Field.Role == schema.Normal && f.Field.Access.Readable() {
			readable = append(readable, f)
		}
	}
	if len(readable) == 0 {
		return ""
	}

	var code strings.Builder
	code.WriteString(fmt.Sprintf("// Field widths and offsets within %s, in bits.\n", g.typeName()))
	code.WriteString("const (\n")
	for _, f := range readable {
		code.WriteString(fmt.Sprintf("\t%s = %d\n", g.constName(f.Field.Name, "Bits"), f.Width))
		code.WriteString(fmt.Sprintf("\t%s = %d\n", g.constName(f.Field.Name, "Offset"), f.Offset))
	}
	code.WriteString(")\n")

	return code.String()
}

// seed is the accumulated default state a constructor starts from: literal
// defaults baked into one pattern, expression defaults applied afterwards.
type seed struct {
	hi, lo uint64
	exprs  []analyzer.ResolvedField
	names  []string
}

func (g *Generator) defaultSeed(paddingOnly bool) seed {
	var s seed
	for _, f := range g.layout.Fields {
		if f.Field.Default == nil {
			continue
		}
		if paddingOnly && f.Field.Role != schema.Padding {
			continue
		}
		d := f.Field.Default
		if d.Literal == nil {
			s.exprs = append(s.exprs, f)
			continue
		}
		pat := d.Literal.Pattern(f.Width)
		if g.is128() {
			u := bitcodec.Insert128(bitcodec.U128(s.hi, s.lo), f.Offset, f.Width, pat)
			s.hi, s.lo = u.Hi, u.Lo
		} else {
			s.lo = bitcodec.Insert(s.lo, f.Offset, f.Width, pat)
		}
		s.names = append(s.names, f.Field.Name+"="+d.Raw)
	}
	return s
}

// seedInit renders the baked literal pattern as a raw initializer, or ""
// when the pattern is zero.
func (g *Generator) seedInit(s seed) string {
	if g.is128() {
		if s.hi == 0 && s.lo == 0 {
			return ""
		}
		g.needs.bitcodecPkg = true
		return fmt.Sprintf("bitcodec.U128(%#x, %#x)", s.hi, s.lo)
	}
	if s.lo == 0 {
		return ""
	}
	return fmt.Sprintf("%#x", s.lo)
}

// exprDefaultStmt applies one expression default to target's raw word.
// Expressions are emitted verbatim and never range-checked here; a value
// wider than the field is truncated like any setter argument.
func (g *Generator) exprDefaultStmt(target string, f analyzer.ResolvedField) string {
	d := f.Field.Default
	raw := target + ".raw"

	switch f.Kind {
	case schema.KindBool:
		ins := g.insertExpr(raw, f.Offset, f.Width, "1")
		return fmt.Sprintf("\tif %s {\n\t\t%s = %s\n\t}\n", d.Expr, raw, ins)
	case schema.KindCustom:
		val := fmt.Sprintf("(%s).IntoBits()", d.Expr)
		if smallestUint(f.Width) != g.wordType() {
			val = cast(g.wordType(), val)
		}
		return fmt.Sprintf("\t%s = %s\n", raw, g.insertExpr(raw, f.Offset, f.Width, val))
	default:
		val := d.Expr
		if f.Field.TypeName != g.wordType() {
			val = cast(g.wordType(), cast(f.Field.TypeName, val))
		}
		return fmt.Sprintf("\t%s = %s\n", raw, g.insertExpr(raw, f.Offset, f.Width, val))
	}
}

// literalDefaultStmt reapplies one literal default to target's raw word.
// Negative literals carry their signed spelling in a trailing comment since
// only the masked pattern appears in the call.
func (g *Generator) literalDefaultStmt(target string, f analyzer.ResolvedField) string {
	lit := f.Field.Default.Literal
	raw := target + ".raw"
	comment := ""
	if lit.Negative {
		comment = " // " + lit.String()
	}
	val := fmt.Sprintf("%#x", lit.Pattern(f.Width))
	return fmt.Sprintf("\t%s = %s%s\n", raw, g.insertExpr(raw, f.Offset, f.Width, val), comment)
}

// constructorBody renders a function body that builds a defaulted value and
// returns wrap(value).
func (g *Generator) constructorBody(s seed, wrap func(string) string) string {
	init := g.seedInit(s)
	lit := g.typeName() + "{}"
	if init != "" {
		lit = fmt.Sprintf("%s{raw: %s}", g.typeName(), init)
	}

	var code strings.Builder
	if len(s.names) > 0 && init != "" {
		code.WriteString(fmt.Sprintf("\t// defaults: %s\n", strings.Join(s.names, ", ")))
	}
	if len(s.exprs) == 0 {
		code.WriteString("\treturn " + wrap(lit) + "\n")
		return code.String()
	}
	code.WriteString("\tx := " + lit + "\n")
	for _, f := range s.exprs {
		code.WriteString(g.exprDefaultStmt("x", f))
	}
	code.WriteString("\treturn " + wrap("x") + "\n")
	return code.String()
}

// generateConstructors emits NewX and NewXWithoutDefaults. Padding defaults
// are applied by both; a padding field's bits are not reachable any other
// way.
func (g *Generator) generateConstructors() string {
	t := g.typeName()
	ident := func(e string) string { return e }
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// %s returns a %s with every declared default applied.\n", g.fnName("New"), t))
	code.WriteString(fmt.Sprintf("func %s() %s {\n", g.fnName("New"), t))
	code.WriteString(g.constructorBody(g.defaultSeed(false), ident))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %sWithoutDefaults returns a %s with only padding defaults applied.\n", g.fnName("New"), t))
	code.WriteString(fmt.Sprintf("func %sWithoutDefaults() %s {\n", g.fnName("New"), t))
	code.WriteString(g.constructorBody(g.defaultSeed(true), ident))
	code.WriteString("}\n")

	return code.String()
}

// generateAccessors emits the getter, setter, and checked setter for every
// normal field, gated by its access mode.
func (g *Generator) generateAccessors() string {
	var methods []string
	for _, f := range g.layout.Fields {
		if f.Field.Role != schema.Normal {
			continue
		}
		if f.Field.Access.Readable() {
			methods = append(methods, g.generateGetter(f))
		}
		if f.Field.Access.Writable() {
			methods = append(methods, g.generateSetter(f))
			methods = append(methods, g.generateCheckedSetter(f))
		}
	}
	return strings.Join(methods, "\n")
}

func (g *Generator) generateGetter(f analyzer.ResolvedField) string {
	var code strings.Builder
	r := g.recv()
	name := methodName("", f.Field.Name)
	extract := g.extractExpr(r+".raw", f.Offset, f.Width)

	note := ""
	if f.Kind.Signed() {
		note = ", sign extended"
	}
	code.WriteString(fmt.Sprintf("// %s returns the %s field (%s at bit %d%s).\n",
		name, f.Field.Name, bitsWord(f.Width), f.Offset, note))
	code.WriteString(fmt.Sprintf("func (%s %s) %s() %s {\n", r, g.typeName(), name, f.Field.TypeName))

	switch {
	case f.Kind == schema.KindBool:
		expr := extract + " != 0"
		if f.Field.TypeName != "bool" {
			expr = cast(f.Field.TypeName, expr)
		}
		code.WriteString("\treturn " + expr + "\n")
	case f.Kind.Signed():
		ext := fmt.Sprintf("bitcodec.SignExtend(%s, %d)", extract, f.Width)
		code.WriteString("\treturn " + cast(f.Field.TypeName, ext) + "\n")
	case f.Kind == schema.KindCustom:
		inner := extract
		if smallestUint(f.Width) != g.wordType() {
			inner = cast(smallestUint(f.Width), inner)
		}
		code.WriteString(fmt.Sprintf("\treturn %sFromBits(%s)\n", f.Field.TypeName, inner))
	default:
		expr := extract
		if f.Field.TypeName != g.wordType() {
			expr = cast(f.Field.TypeName, expr)
		}
		code.WriteString("\treturn " + expr + "\n")
	}
	code.WriteString("}\n")

	return code.String()
}

// setterVal renders the insert argument for a setter parameter v.
func (g *Generator) setterVal(f analyzer.ResolvedField) string {
	switch {
	case f.Kind == schema.KindCustom:
		val := "v.IntoBits()"
		if smallestUint(f.Width) != g.wordType() {
			val = cast(g.wordType(), val)
		}
		return val
	case f.Field.TypeName == g.wordType():
		return "v"
	default:
		return cast(g.wordType(), "v")
	}
}

func (g *Generator) generateSetter(f analyzer.ResolvedField) string {
	var code strings.Builder
	r := g.recv()
	name := methodName("Set", f.Field.Name)
	raw := r + ".raw"

	if f.Kind == schema.KindBool {
		code.WriteString(fmt.Sprintf("// %s sets the %s flag.\n", name, f.Field.Name))
		code.WriteString(fmt.Sprintf("func (%s *%s) %s(v %s) {\n", r, g.typeName(), name, f.Field.TypeName))
		code.WriteString(fmt.Sprintf("\tvar bit %s\n", g.wordType()))
		code.WriteString("\tif v {\n\t\tbit = 1\n\t}\n")
		code.WriteString(fmt.Sprintf("\t%s = %s\n", raw, g.insertExpr(raw, f.Offset, f.Width, "bit")))
		code.WriteString("}\n")
		return code.String()
	}

	code.WriteString(fmt.Sprintf("// %s sets the %s field, truncating v to %s.\n", name, f.Field.Name, bitsWord(f.Width)))
	code.WriteString(fmt.Sprintf("func (%s *%s) %s(v %s) {\n", r, g.typeName(), name, f.Field.TypeName))
	code.WriteString(fmt.Sprintf("\t%s = %s\n", raw, g.insertExpr(raw, f.Offset, f.Width, g.setterVal(f))))
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) generateCheckedSetter(f analyzer.ResolvedField) string {
	var code strings.Builder
	r := g.recv()
	name := methodName("CheckedSet", f.Field.Name)
	setter := methodName("Set", f.Field.Name)

	if f.Kind == schema.KindBool {
		code.WriteString(fmt.Sprintf("// %s sets the %s flag. It never fails.\n", name, f.Field.Name))
		code.WriteString(fmt.Sprintf("func (%s *%s) %s(v %s) error {\n", r, g.typeName(), name, f.Field.TypeName))
		code.WriteString(fmt.Sprintf("\t%s.%s(v)\n", r, setter))
		code.WriteString("\treturn nil\n")
		code.WriteString("}\n")
		return code.String()
	}

	g.needs.fmtPkg = true
	g.needs.bitcodecPkg = true
	overflow := fmt.Sprintf("\t\treturn fmt.Errorf(\"%s: %%w (%s)\", bitcodec.ErrOverflow)\n",
		f.Field.Name, bitsWord(f.Width))

	code.WriteString(fmt.Sprintf("// %s sets the %s field if v fits in %s; otherwise the value\n// is left unchanged.\n",
		name, f.Field.Name, bitsWord(f.Width)))
	code.WriteString(fmt.Sprintf("func (%s *%s) %s(v %s) error {\n", r, g.typeName(), name, f.Field.TypeName))

	switch {
	case f.Kind == schema.KindCustom:
		code.WriteString("\tval := uint64(v.IntoBits())\n")
		code.WriteString(fmt.Sprintf("\tif !bitcodec.FitsUnsigned(val, %d) {\n", f.Width))
		code.WriteString(overflow)
		code.WriteString("\t}\n")
	case f.Kind.Signed():
		code.WriteString(fmt.Sprintf("\tif !bitcodec.FitsSigned(int64(v), %d) {\n", f.Width))
		code.WriteString(overflow)
		code.WriteString("\t}\n")
	default:
		code.WriteString(fmt.Sprintf("\tif !bitcodec.FitsUnsigned(uint64(v), %d) {\n", f.Width))
		code.WriteString(overflow)
		code.WriteString("\t}\n")
	}
	code.WriteString(fmt.Sprintf("\t%s.%s(v)\n", r, setter))
	code.WriteString("\treturn nil\n")
	code.WriteString("}\n")

	return code.String()
}

// generateFromBits emits XFromBits and XFromBitsWithDefaults. The raw value
// is byte-swapped first when the container's from-endianness is little.
func (g *Generator) generateFromBits() string {
	var code strings.Builder
	t := g.typeName()
	name := t + "FromBits"
	little := g.layout.Container.From == schema.Little && g.layout.WidthBits > 8

	doc := fmt.Sprintf("// %s builds a %s from a raw %d-bit value.\n", name, t, g.layout.WidthBits)
	raw := "raw"
	if little {
		doc = fmt.Sprintf("// %s builds a %s from a raw %d-bit little-endian value.\n", name, t, g.layout.WidthBits)
		if g.is128() {
			raw = "raw.Swap()"
		} else {
			g.needs.mathBits = true
			raw = fmt.Sprintf("bits.ReverseBytes%d(raw)", g.layout.WidthBits)
		}
	}
	code.WriteString(doc)
	code.WriteString(fmt.Sprintf("func %s(raw %s) %s {\n", name, g.rawType(), t))
	code.WriteString(fmt.Sprintf("\treturn %s{raw: %s}\n", t, raw))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %sWithDefaults builds a %s from raw, then reapplies every\n// declared default over the incoming bits.\n", name, t))
	code.WriteString(fmt.Sprintf("func %sWithDefaults(raw %s) %s {\n", name, g.rawType(), t))

	var defaulted []analyzer.ResolvedField
	for _, f := range g.layout.Fields {
		if f.Field.Default != nil {
			defaulted = append(defaulted, f)
		}
	}
	if len(defaulted) == 0 {
		code.WriteString(fmt.Sprintf("\treturn %s(raw)\n", name))
		code.WriteString("}\n")
		return code.String()
	}

	code.WriteString(fmt.Sprintf("\tx := %s(raw)\n", name))
	for _, f := range defaulted {
		if f.Field.Default.Literal != nil {
			code.WriteString(g.literalDefaultStmt("x", f))
		} else {
			code.WriteString(g.exprDefaultStmt("x", f))
		}
	}
	code.WriteString("\treturn x\n")
	code.WriteString("}\n")

	return code.String()
}

// generateIntoBits emits the raw export, byte-swapped last when the
// container's into-endianness is little.
func (g *Generator) generateIntoBits() string {
	var code strings.Builder
	r := g.recv()
	little := g.layout.Container.Into == schema.Little && g.layout.WidthBits > 8

	expr := r + ".raw"
	doc := fmt.Sprintf("// IntoBits returns the raw %d-bit value.\n", g.layout.WidthBits)
	if little {
		doc = fmt.Sprintf("// IntoBits returns the raw %d-bit value, byte-swapped to little-endian.\n", g.layout.WidthBits)
		if g.is128() {
			expr = r + ".raw.Swap()"
		} else {
			g.needs.mathBits = true
			expr = fmt.Sprintf("bits.ReverseBytes%d(%s.raw)", g.layout.WidthBits, r)
		}
	}
	code.WriteString(doc)
	code.WriteString(fmt.Sprintf("func (%s %s) IntoBits() %s {\n", r, g.typeName(), g.rawType()))
	code.WriteString(fmt.Sprintf("\treturn %s\n", expr))
	code.WriteString("}\n")

	return code.String()
}

func endianPrefix(e schema.Endian) string {
	if e == schema.Little {
		return "binary.LittleEndian"
	}
	return "binary.BigEndian"
}

// generateMarshal emits the encoding.BinaryMarshaler and BinaryUnmarshaler
// pair. The byte stream matches IntoBits and XFromBits exactly: writing uses
// the into-endianness, reading the from-endianness.
func (g *Generator) generateMarshal() string {
	var code strings.Builder
	r := g.recv()
	t := g.typeName()
	w := g.layout.WidthBits
	nbytes := w / 8

	code.WriteString("// MarshalBinary implements encoding.BinaryMarshaler.\n")
	code.WriteString(fmt.Sprintf("func (%s %s) MarshalBinary() ([]byte, error) {\n", r, t))
	switch {
	case w == 8:
		code.WriteString(fmt.Sprintf("\treturn []byte{%s.raw}, nil\n", r))
	case g.is128():
		g.needs.binaryPkg = true
		into := endianPrefix(g.layout.Container.Into)
		code.WriteString("\tbuf := make([]byte, 16)\n")
		if g.layout.Container.Into == schema.Little {
			code.WriteString(fmt.Sprintf("\t%s.PutUint64(buf[0:8], %s.raw.Lo)\n", into, r))
			code.WriteString(fmt.Sprintf("\t%s.PutUint64(buf[8:16], %s.raw.Hi)\n", into, r))
		} else {
			code.WriteString(fmt.Sprintf("\t%s.PutUint64(buf[0:8], %s.raw.Hi)\n", into, r))
			code.WriteString(fmt.Sprintf("\t%s.PutUint64(buf[8:16], %s.raw.Lo)\n", into, r))
		}
		code.WriteString("\treturn buf, nil\n")
	default:
		g.needs.binaryPkg = true
		code.WriteString(fmt.Sprintf("\tbuf := make([]byte, %d)\n", nbytes))
		code.WriteString(fmt.Sprintf("\t%s.PutUint%d(buf, %s.raw)\n", endianPrefix(g.layout.Container.Into), w, r))
		code.WriteString("\treturn buf, nil\n")
	}
	code.WriteString("}\n\n")

	g.needs.fmtPkg = true
	code.WriteString("// UnmarshalBinary implements encoding.BinaryUnmarshaler.\n")
	code.WriteString(fmt.Sprintf("func (%s *%s) UnmarshalBinary(data []byte) error {\n", r, t))
	code.WriteString(fmt.Sprintf("\tif len(data) != %d {\n", nbytes))
	code.WriteString(fmt.Sprintf("\t\treturn fmt.Errorf(\"expected %d bytes, got %%d\", len(data))\n", nbytes))
	code.WriteString("\t}\n")
	switch {
	case w == 8:
		code.WriteString(fmt.Sprintf("\t%s.raw = data[0]\n", r))
	case g.is128():
		g.needs.bitcodecPkg = true
		from := endianPrefix(g.layout.Container.From)
		if g.layout.Container.From == schema.Little {
			code.WriteString(fmt.Sprintf("\t%s.raw = bitcodec.U128(%s.Uint64(data[8:16]), %s.Uint64(data[0:8]))\n", r, from, from))
		} else {
			code.WriteString(fmt.Sprintf("\t%s.raw = bitcodec.U128(%s.Uint64(data[0:8]), %s.Uint64(data[8:16]))\n", r, from, from))
		}
	default:
		code.WriteString(fmt.Sprintf("\t%s.raw = %s.Uint%d(data)\n", r, endianPrefix(g.layout.Container.From), w))
	}
	code.WriteString("\treturn nil\n")
	code.WriteString("}\n")

	return code.String()
}

// generateEqual emits raw-representation equality. It has no toggle and
// ignores the carried (non-packed) fields.
func (g *Generator) generateEqual() string {
	var code strings.Builder
	r := g.recv()
	t := g.typeName()

	if len(g.layout.Ignored) > 0 {
		code.WriteString("// Equal reports whether both values pack the same bits. Ignored fields\n// are not compared.\n")
	} else {
		code.WriteString("// Equal reports whether both values pack the same bits.\n")
	}
	code.WriteString(fmt.Sprintf("func (%s %s) Equal(other %s) bool {\n", r, t, t))
	code.WriteString(fmt.Sprintf("\treturn %s.raw == other.raw\n", r))
	code.WriteString("}\n")

	return code.String()
}

// generateString emits a debug rendering of the readable fields, most
// significant first.
func (g *Generator) generateString() string {
	var code strings.Builder
	r := g.recv()
	t := g.typeName()

	var readable []analyzer.ResolvedField
	for _, f := range g.layout.Fields {
		if f.Field.Role == schema.Normal && f.Field.Access.Readable() {
			readable = append(readable, f)
		}
	}
	sort.Slice(readable, func(i, j int) bool { return readable[i].Offset > readable[j].Offset })

	code.WriteString("// String renders the readable fields, most significant first.\n")
	code.WriteString(fmt.Sprintf("func (%s %s) String() string {\n", r, t))
	if len(readable) == 0 {
		code.WriteString(fmt.Sprintf("\treturn %q\n", t+"{}"))
		code.WriteString("}\n")
		return code.String()
	}

	g.needs.fmtPkg = true
	var labels, args []string
	for _, f := range readable {
		labels = append(labels, lowerFirst(f.Field.Name)+": %v")
		args = append(args, fmt.Sprintf("%s.%s()", r, methodName("", f.Field.Name)))
	}
	code.WriteString(fmt.Sprintf("\treturn fmt.Sprintf(%q, %s)\n",
		t+"{"+strings.Join(labels, ", ")+"}", strings.Join(args, ", ")))
	code.WriteString("}\n")

	return code.String()
}

// generateBuilder emits the chainable builder. Only writable fields get
// With setters; read-only and no-access fields can only enter through
// defaults.
func (g *Generator) generateBuilder() string {
	var code strings.Builder
	t := g.typeName()
	bt := t + "Builder"
	r := g.recv()
	wrap := func(e string) string { return bt + "{b: " + e + "}" }

	code.WriteString(fmt.Sprintf("// %s assembles a %s through chained setters.\n", bt, t))
	code.WriteString(fmt.Sprintf("type %s struct {\n\tb %s\n}\n\n", bt, t))

	code.WriteString(fmt.Sprintf("// %sBuilder returns a builder seeded with every declared default.\n", g.fnName("New")))
	code.WriteString(fmt.Sprintf("func %sBuilder() %s {\n", g.fnName("New"), bt))
	code.WriteString(g.constructorBody(g.defaultSeed(false), wrap))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %sBuilderWithoutDefaults returns a builder seeded with padding\n// defaults only.\n", g.fnName("New")))
	code.WriteString(fmt.Sprintf("func %sBuilderWithoutDefaults() %s {\n", g.fnName("New"), bt))
	code.WriteString(g.constructorBody(g.defaultSeed(true), wrap))
	code.WriteString("}\n\n")

	for _, f := range g.layout.Fields {
		if f.Field.Role != schema.Normal || !f.Field.Access.Writable() {
			continue
		}
		with := methodName("With", f.Field.Name)
		checked := methodName("CheckedWith", f.Field.Name)
		setter := methodName("Set", f.Field.Name)
		checkedSetter := methodName("CheckedSet", f.Field.Name)

		if f.Kind == schema.KindBool {
			code.WriteString(fmt.Sprintf("// %s sets the %s flag.\n", with, f.Field.Name))
		} else {
			code.WriteString(fmt.Sprintf("// %s sets the %s field, truncating v to %s.\n", with, f.Field.Name, bitsWord(f.Width)))
		}
		code.WriteString(fmt.Sprintf("func (%s %s) %s(v %s) %s {\n", r, bt, with, f.Field.TypeName, bt))
		code.WriteString(fmt.Sprintf("\t%s.b.%s(v)\n", r, setter))
		code.WriteString(fmt.Sprintf("\treturn %s\n", r))
		code.WriteString("}\n\n")

		if f.Kind == schema.KindBool {
			code.WriteString(fmt.Sprintf("// %s sets the %s flag. It never fails.\n", checked, f.Field.Name))
		} else {
			code.WriteString(fmt.Sprintf("// %s sets the %s field if v fits in %s.\n", checked, f.Field.Name, bitsWord(f.Width)))
		}
		code.WriteString(fmt.Sprintf("func (%s %s) %s(v %s) (%s, error) {\n", r, bt, checked, f.Field.TypeName, bt))
		code.WriteString(fmt.Sprintf("\terr := %s.b.%s(v)\n", r, checkedSetter))
		code.WriteString(fmt.Sprintf("\treturn %s, err\n", r))
		code.WriteString("}\n\n")
	}

	code.WriteString(fmt.Sprintf("// Build returns the assembled %s.\n", t))
	code.WriteString(fmt.Sprintf("func (%s %s) Build() %s {\n", r, bt, t))
	code.WriteString(fmt.Sprintf("\treturn %s.b\n", r))
	code.WriteString("}\n")

	return code.String()
}

// bitRange is an inclusive span of accessible bits.
type bitRange struct {
	lo, hi uint
}

// accessRanges returns the merged spans reachable by the per-bit ops.
// Reads cover readable fields plus raw padding bits; writes cover
// writable fields only, padding excluded.
func (g *Generator) accessRanges(write bool) []bitRange {
	var rs []bitRange
	for _, f := range g.layout.Fields {
		var ok bool
		if write {
			ok = f.Field.Role == schema.Normal && f.Field.Access.Writable()
		} else {
			ok = f.Field.Role == schema.Padding ||
				(f.Field.Role == schema.Normal && f.Field.Access.Readable())
		}
		if !ok {
			continue
		}
		rs = append(rs, bitRange{lo: f.Offset, hi: f.Offset + f.Width - 1})
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].lo < rs[j].lo })

	var merged []bitRange
	for _, r := range rs {
		if n := len(merged); n > 0 && merged[n-1].hi+1 == r.lo {
			merged[n-1].hi = r.hi
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func rangeCond(r bitRange) string {
	if r.lo == 0 {
		return fmt.Sprintf("i <= %d", r.hi)
	}
	return fmt.Sprintf("i >= %d && i <= %d", r.lo, r.hi)
}

func (g *Generator) fullCoverage(rs []bitRange) bool {
	return len(rs) == 1 && rs[0].lo == 0 && rs[0].hi == g.layout.WidthBits-1
}

// generateBitOps emits the per-bit surface. Reads reach readable fields
// and raw padding bits; writes reach writable fields only. Everything
// else reads false and silently drops writes, or reports a sentinel in
// the checked variants.
func (g *Generator) generateBitOps() string {
	var code strings.Builder
	r := g.recv()
	t := g.typeName()
	w := g.layout.WidthBits
	read := g.accessRanges(false)
	write := g.accessRanges(true)

	getExpr := g.extractExpr(r+".raw", "i", 1) + " != 0"

	// GetBit
	code.WriteString("// GetBit reports bit i. Bits in fields without read access read as false.\n")
	code.WriteString(fmt.Sprintf("func (%s %s) GetBit(i uint) bool {\n", r, t))
	switch {
	case len(read) == 0:
		code.WriteString("\treturn false\n")
	case g.fullCoverage(read):
		code.WriteString(fmt.Sprintf("\tif i >= %d {\n\t\treturn false\n\t}\n", w))
		code.WriteString("\treturn " + getExpr + "\n")
	case len(read) == 1:
		code.WriteString(fmt.Sprintf("\tif %s {\n\t\treturn %s\n\t}\n", rangeCond(read[0]), getExpr))
		code.WriteString("\treturn false\n")
	default:
		code.WriteString("\tswitch {\n")
		code.WriteString("\tcase " + joinConds(read) + ":\n")
		code.WriteString("\t\treturn " + getExpr + "\n")
		code.WriteString("\t}\n")
		code.WriteString("\treturn false\n")
	}
	code.WriteString("}\n\n")

	// CheckedGetBit
	g.needs.fmtPkg = true
	g.needs.bitcodecPkg = true
	rangeErr := `fmt.Errorf("bit %d: %w", i, bitcodec.ErrIndexRange)`
	noRead := `fmt.Errorf("bit %d: %w", i, bitcodec.ErrNoReadAccess)`
	noWrite := `fmt.Errorf("bit %d: %w", i, bitcodec.ErrNoWriteAccess)`

	code.WriteString("// CheckedGetBit reports bit i, or returns an error if i is out of range\n// or lands in a field without read access.\n")
	code.WriteString(fmt.Sprintf("func (%s %s) CheckedGetBit(i uint) (bool, error) {\n", r, t))
	code.WriteString(fmt.Sprintf("\tif i >= %d {\n\t\treturn false, %s\n\t}\n", w, rangeErr))
	switch {
	case len(read) == 0:
		code.WriteString("\treturn false, " + noRead + "\n")
	case g.fullCoverage(read):
		code.WriteString("\treturn " + getExpr + ", nil\n")
	case len(read) == 1:
		code.WriteString(fmt.Sprintf("\tif %s {\n\t\treturn %s, nil\n\t}\n", rangeCond(read[0]), getExpr))
		code.WriteString("\treturn false, " + noRead + "\n")
	default:
		code.WriteString("\tswitch {\n")
		code.WriteString("\tcase " + joinConds(read) + ":\n")
		code.WriteString("\t\treturn " + getExpr + ", nil\n")
		code.WriteString("\t}\n")
		code.WriteString("\treturn false, " + noRead + "\n")
	}
	code.WriteString("}\n\n")

	// SetBit
	setLines := fmt.Sprintf("\tvar bit %s\n\tif v {\n\t\tbit = 1\n\t}\n\t%s.raw = %s\n",
		g.wordType(), r, g.insertExpr(r+".raw", "i", 1, "bit"))
	indented := "\t" + strings.ReplaceAll(strings.TrimSuffix(setLines, "\n"), "\n", "\n\t") + "\n"

	code.WriteString("// SetBit sets bit i to v. Bits outside writable fields are left\n// unchanged.\n")
	switch {
	case len(write) == 0:
		code.WriteString(fmt.Sprintf("func (%s *%s) SetBit(i uint, v bool) {}\n\n", r, t))
	case g.fullCoverage(write):
		code.WriteString(fmt.Sprintf("func (%s *%s) SetBit(i uint, v bool) {\n", r, t))
		code.WriteString(fmt.Sprintf("\tif i >= %d {\n\t\treturn\n\t}\n", w))
		code.WriteString(setLines)
		code.WriteString("}\n\n")
	case len(write) == 1:
		code.WriteString(fmt.Sprintf("func (%s *%s) SetBit(i uint, v bool) {\n", r, t))
		code.WriteString(fmt.Sprintf("\tif %s {\n", rangeCond(write[0])))
		code.WriteString(indented)
		code.WriteString("\t}\n")
		code.WriteString("}\n\n")
	default:
		code.WriteString(fmt.Sprintf("func (%s *%s) SetBit(i uint, v bool) {\n", r, t))
		code.WriteString("\tswitch {\n")
		code.WriteString("\tcase " + joinConds(write) + ":\n")
		code.WriteString(indented)
		code.WriteString("\t}\n")
		code.WriteString("}\n\n")
	}

	// CheckedSetBit
	code.WriteString("// CheckedSetBit sets bit i to v, or returns an error if i is out of\n// range or lands in a field without write access.\n")
	code.WriteString(fmt.Sprintf("func (%s *%s) CheckedSetBit(i uint, v bool) error {\n", r, t))
	code.WriteString(fmt.Sprintf("\tif i >= %d {\n\t\treturn %s\n\t}\n", w, rangeErr))
	switch {
	case len(write) == 0:
		code.WriteString("\treturn " + noWrite + "\n")
	case g.fullCoverage(write):
		code.WriteString(fmt.Sprintf("\t%s.SetBit(i, v)\n", r))
		code.WriteString("\treturn nil\n")
	case len(write) == 1:
		code.WriteString(fmt.Sprintf("\tif %s {\n\t\t%s.SetBit(i, v)\n\t\treturn nil\n\t}\n", rangeCond(write[0]), r))
		code.WriteString("\treturn " + noWrite + "\n")
	default:
		code.WriteString("\tswitch {\n")
		code.WriteString("\tcase " + joinConds(write) + ":\n")
		code.WriteString(fmt.Sprintf("\t\t%s.SetBit(i, v)\n\t\treturn nil\n", r))
		code.WriteString("\t}\n")
		code.WriteString("\treturn " + noWrite + "\n")
	}
	code.WriteString("}\n")

	return code.String()
}

func joinConds(rs []bitRange) string {
	conds := make([]string, len(rs))
	for i, r := range rs {
		conds[i] = rangeCond(r)
	}
	return strings.Join(conds, ", ")
}
