// Package config holds the tool-level TOML configuration: the knobs that
// stay fixed across a repository rather than varying per invocation.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
)

// DefaultFile is looked up in the working directory when no -config flag
// is given.
const DefaultFile = ".bitfieldgen.toml"

// Config is the decoded tool configuration.
type Config struct {
	// Header is an extra comment line under the generated-code marker.
	Header string `toml:"header"`
	// Suffix names generated files: input.go becomes input<Suffix>.go.
	Suffix string `toml:"suffix" default:"_bitfield"`
	// PackageDoc emits a package doc comment on generated files.
	PackageDoc bool `toml:"package_doc"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	defaults.MustSet(&c)
	return c
}

// Load reads a TOML configuration file. Unknown keys are rejected, and an
// absent suffix falls back to the default so output never overwrites input.
func Load(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key: %s", undecoded[0])
	}
	if err := defaults.Set(&c); err != nil {
		return Config{}, fmt.Errorf("applying config defaults: %w", err)
	}
	return c, nil
}

// LoadDefault loads .bitfieldgen.toml from the working directory, falling
// back to the built-in defaults when no such file exists.
func LoadDefault() (Config, error) {
	c, err := Load(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}
