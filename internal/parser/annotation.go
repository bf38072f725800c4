package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexhholmes/bitfieldgen/internal/schema"
)

// Annotation holds a parsed @bitfield annotation
type Annotation struct {
	WidthBits uint          // Container width in bits: 8, 16, 32, 64, or 128
	Order     schema.Order  // Which end of the container the first field packs into
	From      schema.Endian // Byte order consumed by FromBits/UnmarshalBinary
	Into      schema.Endian // Byte order produced by IntoBits/MarshalBinary
	Gen       schema.Gen    // Which accessor surfaces to generate
}

// ParseAnnotation parses a @bitfield annotation from comment text
//
// Expected format:
//   // @bitfield width=8
//   // @bitfield width=16 order=msb
//   // @bitfield width=32 from=little into=little
//   // @bitfield width=16 builder=off bitops=on
//
// Params are space-separated key=value pairs. Width is required; order
// defaults to lsb, both byte orders to big, and every surface except bitops
// is generated unless switched off.
func ParseAnnotation(comment string) (*Annotation, error) {
	// Match: @bitfield with optional params
	re := regexp.MustCompile(`@bitfield(?:\s+(.+))?`)
	matches := re.FindStringSubmatch(comment)
	if len(matches) < 1 {
		return nil, fmt.Errorf("no @bitfield annotation found")
	}

	if len(matches) < 2 || matches[1] == "" {
		return nil, fmt.Errorf("@bitfield requires width=N")
	}

	return parseBitfieldParams(matches[1])
}

func parseBitfieldParams(params string) (*Annotation, error) {
	anno := &Annotation{
		Gen: schema.DefaultGen(),
	}

	// Extract key=value pairs: "width=16 order=msb"
	pairRe := regexp.MustCompile(`(\w+)=([\w-]+)`)
	pairs := pairRe.FindAllStringSubmatch(params, -1)

	if len(pairs) == 0 {
		return nil, fmt.Errorf("@bitfield requires width=N")
	}

	for _, pair := range pairs {
		key := pair[1]
		value := pair[2]

		switch key {
		case "width":
			width, err := strconv.Atoi(value)
			if err != nil || width <= 0 {
				return nil, fmt.Errorf("invalid width: %s", value)
			}
			if !schema.ValidContainerWidth(uint(width)) {
				return nil, fmt.Errorf("width must be 8, 16, 32, 64, or 128, got: %d", width)
			}
			anno.WidthBits = uint(width)

		case "order":
			order, err := schema.ParseOrder(value)
			if err != nil {
				return nil, err
			}
			anno.Order = order

		case "from":
			endian, err := schema.ParseEndian(value)
			if err != nil {
				return nil, err
			}
			anno.From = endian

		case "into":
			endian, err := schema.ParseEndian(value)
			if err != nil {
				return nil, err
			}
			anno.Into = endian

		default:
			target := toggleTarget(anno, key)
			if target == nil {
				return nil, fmt.Errorf("unknown parameter: %s", key)
			}
			switch value {
			case "on":
				*target = true
			case "off":
				*target = false
			default:
				return nil, fmt.Errorf("%s must be 'on' or 'off', got: %s", key, value)
			}
		}
	}

	if anno.WidthBits == 0 {
		return nil, fmt.Errorf("@bitfield requires width=N")
	}

	return anno, nil
}

// toggleTarget maps a generation toggle key to its field, or nil for an
// unknown key.
func toggleTarget(anno *Annotation, key string) *bool {
	switch key {
	case "new":
		return &anno.Gen.New
	case "frombits":
		return &anno.Gen.FromBits
	case "intobits":
		return &anno.Gen.IntoBits
	case "marshal":
		return &anno.Gen.Marshal
	case "string":
		return &anno.Gen.String
	case "builder":
		return &anno.Gen.Builder
	case "bitops":
		return &anno.Gen.BitOps
	}
	return nil
}

// FindAnnotation searches comment lines for a @bitfield annotation.
// A line that carries the marker but fails to parse is an error rather
// than a miss, so malformed annotations never silently skip a struct.
func FindAnnotation(comments []string) (*Annotation, bool, error) {
	for _, comment := range comments {
		if !strings.Contains(comment, "@bitfield") {
			continue
		}
		anno, err := ParseAnnotation(comment)
		if err != nil {
			return nil, true, err
		}
		return anno, true, nil
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @bitfield width=16" → "@bitfield width=16"
// "/* @bitfield width=16 */" → "@bitfield width=16"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		return line
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		return line
	}

	return line
}
