package tostr

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the declarative part of a Builder's configuration, usually kept
// in a YAML file next to the type it describes:
//
//	fields: true
//	methods: false
//	ignore: [Password, Token]
//	max_width: 40
//
// Substitutions are functions and can only be configured in code.
type Config struct {
	Fields   bool     `yaml:"fields"`
	Methods  bool     `yaml:"methods"`
	Ignore   []string `yaml:"ignore,omitempty"`
	MaxWidth int      `yaml:"max_width,omitempty"`
}

// LoadConfig decodes a YAML Config from r. Unknown keys are rejected.
// An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML Config from data.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// Apply adds cfg to the builder. It never clears settings made earlier.
func (b *Builder[T]) Apply(cfg Config) *Builder[T] {
	if cfg.Fields {
		b.UseFields()
	}
	if cfg.Methods {
		b.UseMethods()
	}
	b.Ignore(cfg.Ignore...)
	if cfg.MaxWidth != 0 {
		b.MaxWidth(cfg.MaxWidth)
	}
	return b
}
