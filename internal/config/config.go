// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qrform/pkg/mecard"
)

// Environment variables read by ApplyEnv.
const (
	EnvFormat   = "QRFORM_FORMAT"
	EnvRenderer = "QRFORM_RENDERER"
	EnvOutput   = "QRFORM_OUTPUT"
)

// Config holds all qrform configuration.
type Config struct {
	Output     Output            `yaml:"output"`
	Renderer   string            `yaml:"renderer"`
	Validation Validation        `yaml:"validation"`
	Labels     map[string]string `yaml:"labels"`
	Theme      Theme             `yaml:"theme"`
}

// Output controls the payload encoding and destination.
type Output struct {
	Format string `yaml:"format"` // "mecard" | "vcard"
	Path   string `yaml:"path"`   // empty writes to stdout
}

// Validation holds generator validation switches.
type Validation struct {
	StrictEmptyURL bool `yaml:"strict_empty_url"`
}

// Theme holds prompt decorations for the tui renderer.
type Theme struct {
	RequiredSuffix string `yaml:"required_suffix"`
	InfoPrefix     string `yaml:"info_prefix"`
	ErrorPrefix    string `yaml:"error_prefix"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output:   Output{Format: string(mecard.FormatMeCard)},
		Renderer: "tui",
		Theme: Theme{
			RequiredSuffix: " *",
			ErrorPrefix:    "Invalid ",
		},
	}
}

// Load reads a single YAML config file at path. A missing or empty file
// yields the defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// layer mirrors Config with pointers so unset keys can be told apart from
// zero values.
type layer struct {
	Output *struct {
		Format *string `yaml:"format"`
		Path   *string `yaml:"path"`
	} `yaml:"output"`
	Renderer   *string `yaml:"renderer"`
	Validation *struct {
		StrictEmptyURL *bool `yaml:"strict_empty_url"`
	} `yaml:"validation"`
	Labels map[string]string `yaml:"labels"`
	Theme  *struct {
		RequiredSuffix *string `yaml:"required_suffix"`
		InfoPrefix     *string `yaml:"info_prefix"`
		ErrorPrefix    *string `yaml:"error_prefix"`
	} `yaml:"theme"`
}

func loadLayer(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var l layer
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &l, nil
}

func (c *Config) merge(l *layer) {
	if o := l.Output; o != nil {
		setString(&c.Output.Format, o.Format)
		setString(&c.Output.Path, o.Path)
	}
	setString(&c.Renderer, l.Renderer)
	if v := l.Validation; v != nil && v.StrictEmptyURL != nil {
		c.Validation.StrictEmptyURL = *v.StrictEmptyURL
	}
	if len(l.Labels) > 0 {
		if c.Labels == nil {
			c.Labels = make(map[string]string, len(l.Labels))
		}
		for k, v := range l.Labels {
			c.Labels[k] = v
		}
	}
	if t := l.Theme; t != nil {
		setString(&c.Theme.RequiredSuffix, t.RequiredSuffix)
		setString(&c.Theme.InfoPrefix, t.InfoPrefix)
		setString(&c.Theme.ErrorPrefix, t.ErrorPrefix)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: loading %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: QRFORM_FORMAT, QRFORM_RENDERER, QRFORM_OUTPUT.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		c.Output.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRenderer)); v != "" {
		c.Renderer = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.Output.Path = v
	}
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if _, err := mecard.FormatFor(c.Output.Format); err != nil {
		return fmt.Errorf("config: output.format: %w", err)
	}
	switch strings.ToLower(c.Renderer) {
	case "tui", "interactive", "vanilla":
	default:
		return fmt.Errorf("config: renderer must be \"tui\", \"interactive\" or \"vanilla\", got %q", c.Renderer)
	}
	return nil
}

// Format returns the parsed output format. Call Validate first.
func (c *Config) Format() mecard.Format {
	f, err := mecard.FormatFor(c.Output.Format)
	if err != nil {
		return mecard.FormatMeCard
	}
	return f
}
