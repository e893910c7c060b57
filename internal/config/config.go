package config

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/router"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "vroute.json"

	// TOMLFileName is the TOML configuration file name.
	TOMLFileName = "vroute.toml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents a vroute project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" toml:"name"`

	// Mode selects the location strategy: "history" or "hash".
	Mode string `json:"mode,omitempty" toml:"mode" env:"VROUTE_MODE"`

	// Base is the mount prefix for history mode.
	Base string `json:"base,omitempty" toml:"base" env:"VROUTE_BASE"`

	// Canonicalize redirects non-canonical paths to their canonical form.
	Canonicalize bool `json:"canonicalize,omitempty" toml:"canonicalize"`

	// ActiveClass is added to links whose target is the current route.
	ActiveClass string `json:"activeClass,omitempty" toml:"activeClass"`

	// Routes is the ordered route list.
	Routes []router.RouteConfig `json:"routes,omitempty" toml:"routes"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty" toml:"dev"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	Host string `json:"host,omitempty" toml:"host" env:"VROUTE_HOST"`
	Port int    `json:"port,omitempty" toml:"port" env:"VROUTE_PORT"`

	// Assets is a directory or an s3://bucket/prefix location.
	Assets string `json:"assets,omitempty" toml:"assets" env:"VROUTE_ASSETS"`

	// Metrics exposes /metrics.
	Metrics bool `json:"metrics,omitempty" toml:"metrics" env:"VROUTE_METRICS"`

	// Tracing records a span per navigation.
	Tracing bool `json:"tracing,omitempty" toml:"tracing" env:"VROUTE_TRACING"`

	LogLevel string `json:"logLevel,omitempty" toml:"logLevel" env:"VROUTE_LOG_LEVEL"`
}

// Default returns a configuration with default values and no routes.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir, preferring vroute.json over
// vroute.toml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("R006").
		WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + dir)
}

// LoadFile reads configuration from path. The format follows the file
// extension. Environment overrides are applied and the result validated.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("R006").Wrap(err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = parseTOML(data)
	} else {
		cfg, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	cfg.configPath = path
	if err := cfg.Finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finish fills defaults, applies environment overrides and validates.
func (c *Config) Finish() error {
	if err := c.ApplyEnv(); err != nil {
		return err
	}
	c.applyDefaults()
	return c.Validate()
}

func parseJSON(data []byte) (*Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("R006").
			WithDetail("Failed to parse " + JSONFileName + ": " + err.Error()).
			Wrap(err)
	}
	if routes, ok := raw["routes"]; ok {
		routes = bytes.TrimSpace(routes)
		if !bytes.HasPrefix(routes, []byte("[")) && !bytes.Equal(routes, []byte("null")) {
			return nil, routesNotList()
		}
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("R006").
			WithDetail("Failed to parse " + JSONFileName + ": " + err.Error()).
			Wrap(err)
	}
	return cfg, nil
}

func parseTOML(data []byte) (*Config, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.New("R006").
			WithDetail("Failed to parse " + TOMLFileName + ": " + err.Error()).
			Wrap(err)
	}
	if routes, ok := raw["routes"]; ok {
		switch routes.(type) {
		case []map[string]any, []any:
		default:
			return nil, routesNotList()
		}
	}

	cfg := &Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errors.New("R006").
			WithDetail("Failed to parse " + TOMLFileName + ": " + err.Error()).
			Wrap(err)
	}
	return cfg, nil
}

func routesNotList() error {
	return errors.New("R001").
		WithDetail("routes must be a list of route records").
		WithSuggestion(`Write routes as [{"path": "/", "component": "home"}, ...].`)
}

// ApplyEnv overrides fields from VROUTE_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.New("R006").
			WithDetail("Invalid environment override: " + err.Error()).
			Wrap(err)
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = string(location.ModeHistory)
	}
	if c.ActiveClass == "" {
		c.ActiveClass = router.DefaultActiveClass
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.LogLevel == "" {
		c.Dev.LogLevel = DefaultLogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := location.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Base != "" && !strings.HasPrefix(c.Base, "/") {
		return errors.New("R006").
			WithDetailf("base %q must start with /", c.Base)
	}
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("R006").
			WithDetail("Port must be between 0 and 65535")
	}
	switch strings.ToLower(c.Dev.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("R006").
			WithDetailf("logLevel %q is not one of debug, info, warn, error", c.Dev.LogLevel)
	}
	for i, rc := range c.Routes {
		if rc.Path != router.Wildcard && !strings.HasPrefix(rc.Path, "/") {
			return errors.New("R001").
				WithDetailf("route %d has path %q; paths start with / or are *", i, rc.Path)
		}
	}
	return nil
}

// LocationMode returns the parsed mode. Call after Validate.
func (c *Config) LocationMode() location.Mode {
	mode, _ := location.ParseMode(c.Mode)
	return mode
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// DevAddress returns the listen address for the dev server.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// AssetsLocation returns the asset location with relative directories
// resolved against the config directory. It is empty when no assets are
// configured.
func (c *Config) AssetsLocation() string {
	loc := c.Dev.Assets
	if loc == "" || strings.HasPrefix(loc, "s3://") || filepath.IsAbs(loc) {
		return loc
	}
	return filepath.Join(c.Dir(), loc)
}

// Exists reports whether dir holds a configuration file.
func Exists(dir string) bool {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a configuration file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("R006").
				WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
