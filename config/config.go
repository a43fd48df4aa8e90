// Package config provides configuration parsing for owofetch.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gitlab.com/tinyland/lab/owofetch/display/art"
	"gitlab.com/tinyland/lab/owofetch/display/banner"
	"gitlab.com/tinyland/lab/owofetch/display/color"
	"gitlab.com/tinyland/lab/owofetch/internal/format"
	"gopkg.in/yaml.v3"
)

// relPath is the config file location below the XDG config directories.
var relPath = filepath.Join("owofetch", "config.yaml")

// ArtAuto selects the art from the detected OS name.
const ArtAuto = "auto"

// Config represents the owofetch configuration file.
type Config struct {
	// Color is the label accent as "#RRGGBB".
	Color string `yaml:"color"`
	// Fields lists the info fields to show, in order. Empty means all.
	Fields []string `yaml:"fields"`
	// Humanize spells quantities as approximate English words.
	Humanize bool `yaml:"humanize"`
	// Uwu rewrites the info column.
	Uwu bool `yaml:"uwu"`
	// Art names the embedded art to draw, or "auto".
	Art string `yaml:"art"`
	// TermWidth overrides terminal width detection when positive.
	TermWidth int `yaml:"term_width"`
}

// ConfigError reports a user-supplied value that cannot be used.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Color:     banner.DefaultAccent.Hex(),
		Fields:    nil,
		Humanize:  false,
		Uwu:       true,
		Art:       ArtAuto,
		TermWidth: 0,
	}
}

// DefaultPath returns the path owofetch writes and documents for its config
// file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}

// Load reads configuration from the first owofetch/config.yaml found in the
// XDG config directories. If none exists, defaults plus environment
// overrides are returned.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		cfg := DefaultConfig()
		if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadConfig(path)
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Load()
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	return LoadFromReader(f, os.LookupEnv)
}

// LoadFromReader decodes YAML from r over the defaults and then applies
// OWOFETCH_* overrides looked up through lookupEnv.
func LoadFromReader(r io.Reader, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := applyEnvOverrides(cfg, lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv("OWOFETCH_COLOR"); ok && v != "" {
		cfg.Color = v
	}
	if v, ok := lookupEnv("OWOFETCH_FIELDS"); ok && v != "" {
		cfg.Fields = splitList(v)
	}
	if v, ok := lookupEnv("OWOFETCH_HUMANIZE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Key: "OWOFETCH_HUMANIZE", Value: v, Err: err}
		}
		cfg.Humanize = b
	}
	if v, ok := lookupEnv("OWOFETCH_UWU"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Key: "OWOFETCH_UWU", Value: v, Err: err}
		}
		cfg.Uwu = b
	}
	if v, ok := lookupEnv("OWOFETCH_ART"); ok && v != "" {
		cfg.Art = v
	}
	if v, ok := lookupEnv("OWOFETCH_TERM_WIDTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Key: "OWOFETCH_TERM_WIDTH", Value: v, Err: err}
		}
		cfg.TermWidth = n
	}
	return nil
}

// splitList splits a comma or whitespace separated list.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// Validate checks the configuration for structural consistency. Color and
// field names are checked by Resolve.
func (c *Config) Validate() error {
	if c.TermWidth < 0 {
		return &ConfigError{Key: "term_width", Value: strconv.Itoa(c.TermWidth), Err: errors.New("must be non-negative")}
	}
	if c.Art != "" && c.Art != ArtAuto && !slices.Contains(art.Names(), c.Art) {
		return &ConfigError{
			Key:   "art",
			Value: c.Art,
			Err:   fmt.Errorf("%w (want %s or one of %s)", art.ErrUnknownArt, ArtAuto, strings.Join(art.Names(), ", ")),
		}
	}
	return nil
}

// ParseAccent decodes a "#RRGGBB" color. The '#' is optional, case is
// ignored and any non-hex characters are dropped before decoding.
func ParseAccent(s string) (color.RGB, error) {
	digits := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		default:
			return -1
		}
	}, s)

	rgb, err := color.DecodeHex(digits)
	if err != nil {
		return color.RGB{}, &ConfigError{Key: "color", Value: s, Err: err}
	}
	return rgb, nil
}

// Resolve validates c and converts it into the renderer's configuration.
// The terminal width is detected when c.TermWidth is zero.
func Resolve(c *Config) (banner.RenderConfig, error) {
	if err := c.Validate(); err != nil {
		return banner.RenderConfig{}, err
	}

	accent, err := ParseAccent(c.Color)
	if err != nil {
		return banner.RenderConfig{}, err
	}

	fields := banner.DefaultFields()
	if len(c.Fields) > 0 {
		fields = make([]banner.Field, 0, len(c.Fields))
		for _, name := range c.Fields {
			f, err := banner.ParseField(name)
			if err != nil {
				return banner.RenderConfig{}, &ConfigError{Key: "field", Value: name, Err: err}
			}
			fields = append(fields, f)
		}
	}

	mode := format.Precise
	if c.Humanize {
		mode = format.Humanized
	}

	return banner.RenderConfig{
		Accent:    accent,
		Fields:    fields,
		Numeric:   mode,
		Uwu:       c.Uwu,
		TermWidth: banner.DetectTermWidth(c.TermWidth),
	}, nil
}

// SaveConfig writes c as YAML to path, creating parent directories.
func SaveConfig(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
