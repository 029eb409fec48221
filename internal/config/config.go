// Package config loads the sheet build configuration (sheet.yaml).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-arm5sheet/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigRead       = errors.New("failed to read config")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrMissingTemplate  = errors.New("config must name the sheet HTML and CSS template files")
	ErrMissingOutputDir = errors.New("config must name an output directory")
)

// Default output file names.
const (
	DefaultHTMLName = "arm5.html"
	DefaultCSSName  = "arm5.css"
)

// Config holds everything the build reads besides the inputs themselves.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Inputs   InputsConfig   `yaml:"inputs"`
	Output   OutputConfig   `yaml:"output"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

// TemplateConfig names the externally maintained template files the
// generated fragments are spliced into.
type TemplateConfig struct {
	HTML string `yaml:"html"`
	CSS  string `yaml:"css"`
}

// InputsConfig overrides the embedded default inputs. Empty paths select
// the embedded defaults.
type InputsConfig struct {
	Colors        string `yaml:"colors"`        // CSV color table
	Documentation string `yaml:"documentation"` // markdown
}

// OutputConfig names the rendered output files.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	HTML string `yaml:"html"` // default DefaultHTMLName
	CSS  string `yaml:"css"`  // default DefaultCSSName
}

// AlertsConfig declares the update banners for this release of the sheet.
type AlertsConfig struct {
	Marker  string   `yaml:"marker"` // attribute set when old alerts are dismissed
	Banners []Banner `yaml:"banners"`
}

// Banner is one dismissable update banner.
type Banner struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Level string `yaml:"level"` // "info" or "warning"
	ID    string `yaml:"id"`    // optional stable ID, must not be numeric
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.HTML == "" {
		c.Output.HTML = DefaultHTMLName
	}
	if c.Output.CSS == "" {
		c.Output.CSS = DefaultCSSName
	}
}

// Validate checks the required fields. Banner levels are validated by the
// generator, which owns the permitted set.
func (c *Config) Validate() error {
	if c.Template.HTML == "" || c.Template.CSS == "" {
		return ErrMissingTemplate
	}
	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}
	return nil
}
