package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const EnvConfig = "FOXLANG_CONFIG"

var ErrFormat = errors.New("unsupported config format")

// Config holds the settings of a foxlang session
type Config struct {
	MaxDepth      int            `yaml:"max_depth" toml:"max_depth"`
	MaxNesting    int            `yaml:"max_nesting" toml:"max_nesting"`
	MaxStringSize int            `yaml:"max_string_size" toml:"max_string_size"`
	StringOrder   string         `yaml:"string_order" toml:"string_order"`
	LogLevel      string         `yaml:"log_level" toml:"log_level"`
	LogFormat     string         `yaml:"log_format" toml:"log_format"`
	Store         string         `yaml:"store" toml:"store"`
	Globals       map[string]any `yaml:"globals" toml:"globals"`
}

// Default gives the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the configuration file at path. Its format is given by its
// extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	cfg, err := Decode(buf, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FOXLANG_CONFIG or gives the default
// configuration when the variable is not set.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

type Format int8

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

func detectFormat(file string) Format {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

func Decode(buf []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(buf), &cfg)
		if err != nil {
			return nil, err
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("unknown key %s", keys[0])
		}
	default:
		return nil, ErrFormat
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StringOrder == "" {
		c.StringOrder = "hash"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.Globals == nil {
		c.Globals = make(map[string]any)
	}
	if _, ok := c.Globals["version"]; !ok {
		c.Globals["version"] = "1.0"
	}
	if _, ok := c.Globals["author"]; !ok {
		c.Globals["author"] = "foxlang"
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.StringOrder) {
	case "hash", "lexical":
	default:
		return fmt.Errorf("string_order: %q: expected hash or lexical", c.StringOrder)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: %q: expected text or json", c.LogFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level gives the slog level named by log_level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
