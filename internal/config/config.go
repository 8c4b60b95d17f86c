// Package config loads the optional campdoc.yaml file.
//
// A config file overrides the built-in profiles field by field:
//
//	assets:
//	  basePath: ./assets
//	profiles:
//	  api:
//	    output: docs/api.html
//	    metadata:
//	      date: auto:korean
//	    features:
//	      sanitize: true
//	    toc:
//	      maxDepth: 3
//
// Fields left out keep the profile's built-in value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campstation/campdoc/internal/yamlutil"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "campdoc.yaml"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidField   = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength    = 4096
	MaxTitleLength   = 200
	MaxTextLength    = 500  // footer line, project name
	MaxURLLength     = 2048 // base URL
	MaxVersionLength = 50
	MaxDateLength    = 60 // "2025-11-16" or "auto:FORMAT"
	MaxLangLength    = 35 // BCP 47 tag
	MaxStyleLength   = 4096
	MaxFooterLines   = 10
)

// Config holds everything campdoc.yaml can set.
type Config struct {
	Assets   AssetsConfig             `yaml:"assets"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ProfileConfig overrides one built-in profile.
type ProfileConfig struct {
	Input    string         `yaml:"input"`
	Output   string         `yaml:"output"`
	Style    string         `yaml:"style"` // style name or CSS file path
	CSS      string         `yaml:"css"`   // extra CSS appended after the style
	Metadata MetadataConfig `yaml:"metadata"`
	Features FeaturesConfig `yaml:"features"`
	TOC      TOCConfig      `yaml:"toc"`
}

// MetadataConfig overrides page header and footer text.
type MetadataConfig struct {
	Title   string   `yaml:"title"`
	Heading string   `yaml:"heading"`
	Date    string   `yaml:"date"` // literal, "auto" or "auto:FORMAT"
	Version string   `yaml:"version"`
	Project string   `yaml:"project"`
	BaseURL string   `yaml:"baseURL"`
	Lang    string   `yaml:"lang"`
	Footer  []string `yaml:"footer"` // replaces all footer lines when set
}

// FeaturesConfig toggles conversion steps. Nil leaves the profile default.
type FeaturesConfig struct {
	Tables            *bool `yaml:"tables"`
	FencedCode        *bool `yaml:"fencedCode"`
	HeaderIDs         *bool `yaml:"headerIDs"`
	TOC               *bool `yaml:"toc"`
	Highlight         *bool `yaml:"highlight"`
	LineNumbers       *bool `yaml:"lineNumbers"`
	DecorateEndpoints *bool `yaml:"decorateEndpoints"`
	RawHTML           *bool `yaml:"rawHTML"`
	Sanitize          *bool `yaml:"sanitize"`
}

// TOCConfig defines table of contents options. Zero depths keep the default.
type TOCConfig struct {
	Title    *string `yaml:"title"` // empty string hides the title
	MinDepth int     `yaml:"minDepth"`
	MaxDepth int     `yaml:"maxDepth"`
}

// DefaultConfig returns an empty configuration: every profile keeps its
// built-in values and assets come from the embedded set.
func DefaultConfig() *Config {
	return &Config{Profiles: map[string]ProfileConfig{}}
}

// Profile returns the overrides for name, or the zero value.
func (c *Config) Profile(name string) ProfileConfig {
	if c == nil {
		return ProfileConfig{}
	}
	return c.Profiles[name]
}

// Validate checks field lengths and TOC depths.
// Profile names are checked by the caller, which knows the built-in set.
func (c *Config) Validate() error {
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	for name, p := range c.Profiles {
		if err := p.validate("profiles." + name); err != nil {
			return err
		}
	}
	return nil
}

func (p ProfileConfig) validate(prefix string) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input", p.Input, MaxPathLength},
		{"output", p.Output, MaxPathLength},
		{"style", p.Style, MaxStyleLength},
		{"metadata.title", p.Metadata.Title, MaxTitleLength},
		{"metadata.heading", p.Metadata.Heading, MaxTitleLength},
		{"metadata.date", p.Metadata.Date, MaxDateLength},
		{"metadata.version", p.Metadata.Version, MaxVersionLength},
		{"metadata.project", p.Metadata.Project, MaxTextLength},
		{"metadata.baseURL", p.Metadata.BaseURL, MaxURLLength},
		{"metadata.lang", p.Metadata.Lang, MaxLangLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(prefix+"."+f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(p.Metadata.Footer) > MaxFooterLines {
		return fmt.Errorf("%w: %s.metadata.footer has %d lines, max %d", ErrInvalidField, prefix, len(p.Metadata.Footer), MaxFooterLines)
	}
	for i, line := range p.Metadata.Footer {
		if err := validateFieldLength(fmt.Sprintf("%s.metadata.footer[%d]", prefix, i), line, MaxTextLength); err != nil {
			return err
		}
	}

	if p.TOC.Title != nil {
		if err := validateFieldLength(prefix+".toc.title", *p.TOC.Title, MaxTitleLength); err != nil {
			return err
		}
	}
	for _, d := range []struct {
		name  string
		value int
	}{{"minDepth", p.TOC.MinDepth}, {"maxDepth", p.TOC.MaxDepth}} {
		if d.value < 0 || d.value > 6 {
			return fmt.Errorf("%w: %s.toc.%s must be between 1 and 6, got %d", ErrInvalidField, prefix, d.name, d.value)
		}
	}
	if p.TOC.MinDepth != 0 && p.TOC.MaxDepth != 0 && p.TOC.MinDepth > p.TOC.MaxDepth {
		return fmt.Errorf("%w: %s.toc.minDepth %d exceeds maxDepth %d", ErrInvalidField, prefix, p.TOC.MinDepth, p.TOC.MaxDepth)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads and validates the config file at path.
// A missing file is an error; an empty file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.Decode(f, cfg, true); err != nil {
		if errors.Is(err, yamlutil.ErrEmptyInput) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]ProfileConfig{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the config to use. An explicit path must exist.
// Without one, DefaultFileName in dir is used when present and
// DefaultConfig otherwise. It returns the path that was read, if any.
func Load(explicit, dir string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}

	path := filepath.Join(dir, DefaultFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
