package analyzer

// TypeRegistry tracks named types for layout resolution: aliases of
// primitive types and conversion-capable custom types with a known width.
type TypeRegistry struct {
	customs map[string]uint   // custom type name → width in bits
	aliases map[string]string // alias → underlying type
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		customs: make(map[string]uint),
		aliases: make(map[string]string),
	}
}

// RegisterCustom adds a conversion-capable named type with its width in
// bits. Bitfield containers register themselves this way, which is what
// lets one bitfield nest inside another.
func (r *TypeRegistry) RegisterCustom(name string, widthBits uint) {
	r.customs[name] = widthBits
}

// RegisterAlias adds a type alias mapping (e.g., type Mode uint8)
func (r *TypeRegistry) RegisterAlias(alias, underlying string) {
	r.aliases[alias] = underlying
}

// CustomWidth returns the registered width of a custom type
func (r *TypeRegistry) CustomWidth(name string) (uint, bool) {
	width, ok := r.customs[name]
	return width, ok
}

// ResolveType resolves type aliases to their underlying types
// Returns the original type if not an alias
func (r *TypeRegistry) ResolveType(goType string) string {
	// Alias cycles cannot appear in compilable Go, but the sources here
	// are parsed without type checking.
	seen := make(map[string]bool)
	for {
		underlying, ok := r.aliases[goType]
		if !ok || seen[goType] {
			break
		}
		seen[goType] = true
		goType = underlying
	}
	return goType
}
