// Package config reads the server and printer settings. Values are taken
// from the defaults, a YAML file and the environment, in this order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
	"github.com/labelpress/labelpress/frontend"
)

// Printer is the print bridge target.
type Printer struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Protocol string `yaml:"protocol"`
	// Timeouts in milliseconds.
	TimeoutMS       int     `yaml:"timeoutMS"`
	StatusTimeoutMS int     `yaml:"statusTimeoutMS"`
	DPI             int     `yaml:"dpi"`
	ScaleX          float64 `yaml:"scaleX"`
	ScaleY          float64 `yaml:"scaleY"`
	Debug           bool    `yaml:"debug"`
}

// Timeout returns the job submission timeout.
func (p Printer) Timeout() time.Duration {
	return time.Duration(p.TimeoutMS) * time.Millisecond
}

// StatusTimeout returns the liveness check timeout.
func (p Printer) StatusTimeout() time.Duration {
	return time.Duration(p.StatusTimeoutMS) * time.Millisecond
}

// FontFile adds one font file to a family.
type FontFile struct {
	Family string `yaml:"family"`
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`
	File   string `yaml:"file"`
}

// Config holds all settings of the process.
type Config struct {
	Port        int    `yaml:"port"`
	LayoutsDir  string `yaml:"layoutsDir"`
	CORSOrigin  string `yaml:"corsOrigin"`
	FontDir     string `yaml:"fontDir"`
	PatternsDir string `yaml:"patternsDir"`
	// Language is the hyphenation language of text without one.
	Language  string `yaml:"language"`
	Hyphenate bool   `yaml:"hyphenate"`
	// Balance is the line balancing policy, see linebreak.ParseBalancePolicy.
	Balance  string                 `yaml:"balance"`
	Debug    bool                   `yaml:"debug"`
	Printer  Printer                `yaml:"printer"`
	Fonts    []FontFile             `yaml:"fonts"`
	Settings frontend.PrintSettings `yaml:"printSettings"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:        3000,
		LayoutsDir:  "layouts",
		CORSOrigin:  "*",
		FontDir:     "fonts",
		PatternsDir: "patterns",
		Language:    "ru",
		Hyphenate:   true,
		Printer: Printer{
			Host:            "localhost",
			Port:            18080,
			Name:            "Printer1",
			Protocol:        command.ProtocolSDK,
			TimeoutMS:       3000,
			StatusTimeoutMS: 5000,
			DPI:             bag.DefaultDPI,
			ScaleX:          frontend.DefaultPixelScale,
			ScaleY:          frontend.DefaultPixelScale,
		},
		Settings: frontend.DefaultPrintSettings(),
	}
}

// Load returns the defaults overridden by the YAML file (if filename is not
// empty) and by the process environment.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read configuration: %w", err)
		}
		if err := cfg.ParseYAML(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ParseYAML overrides the fields present in data.
func (cfg *Config) ParseYAML(data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: configuration: %s", bag.ErrInvalidInput, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment variables known to the
// reference deployment.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	var err error
	num := func(name string, dst *int) {
		v, ok := lookup(name)
		if !ok || v == "" || err != nil {
			return
		}
		i, e := strconv.Atoi(strings.TrimSpace(v))
		if e != nil {
			err = bag.Invalidf("environment %s: %q is not a number", name, v)
			return
		}
		*dst = i
	}
	flag := func(name string, dst *bool) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v == "true" || v == "1"
		}
	}
	num("PORT", &cfg.Port)
	str("LAYOUTS_DIR", &cfg.LayoutsDir)
	str("CORS_ORIGIN", &cfg.CORSOrigin)
	str("FONT_DIR", &cfg.FontDir)
	str("PATTERNS_DIR", &cfg.PatternsDir)
	str("BIXOLON_HOST", &cfg.Printer.Host)
	num("BIXOLON_PORT", &cfg.Printer.Port)
	str("BIXOLON_PRINTER_NAME", &cfg.Printer.Name)
	num("BIXOLON_TIMEOUT", &cfg.Printer.TimeoutMS)
	flag("BIXOLON_DEBUG", &cfg.Printer.Debug)
	str("BIXOLON_PROTOCOL", &cfg.Printer.Protocol)
	return err
}

// Validate checks the values that cannot be repaired later.
func (cfg *Config) Validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return bag.Invalidf("port %d out of range", cfg.Port)
	}
	if cfg.Printer.Port <= 0 || cfg.Printer.Port > 65535 {
		return bag.Invalidf("printer port %d out of range", cfg.Printer.Port)
	}
	if cfg.Printer.DPI <= 0 {
		return bag.Invalidf("printer dpi must be positive, got %d", cfg.Printer.DPI)
	}
	if cfg.Printer.ScaleX <= 0 || cfg.Printer.ScaleY <= 0 {
		return bag.Invalidf("printer scale must be positive")
	}
	if _, err := command.EncodingFor(cfg.Printer.Protocol); err != nil {
		return err
	}
	return nil
}
