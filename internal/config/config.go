// Package config holds app-wide settings unmarshalled from Viper
// (see: /internal/cli).
package config

import (
	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings available in
// the optional config file (~/.dnakit.yaml or --config) and defaults.
// Command-line flags override everything here.
type Config struct {
	// accepted alphabet: "dna" (strict) or "iupac" (permissive)
	Alphabet string `mapstructure:"alphabet"`

	// block size in bytes for the streaming counter
	ChunkSize int `mapstructure:"chunk-size"`

	// default output format: text | json | yaml
	Output string `mapstructure:"output"`

	// line width when printing long sequences (0 = one line)
	LineWidth int `mapstructure:"line-width"`
}

// SetDefaults registers fallback values on v so a partial (or absent)
// config file still yields a complete Config.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("alphabet", "dna")
	v.SetDefault("chunk-size", 64*1024)
	v.SetDefault("output", "text")
	v.SetDefault("line-width", 0)
}

// FromViper returns a Config populated from v.
func FromViper(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in settings with no file involved.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	c, _ := FromViper(v)
	return c
}
