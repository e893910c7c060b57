package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vango-dev/vroute"
	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/location"
)

// loadConfig reads --config, else a config file in the working directory,
// else the defaults. Environment overrides apply in every case.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.LoadFile(flags.configPath)
	}
	if config.Exists(".") {
		return config.Load(".")
	}
	cfg := config.Default()
	if err := cfg.Finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a text logger at level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// setup loads the configuration and the logger, with --log-level taking
// precedence over the config file.
func setup(flags *globalFlags, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Dev.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logger, err := newLogger(stderr, level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// appOptions maps the configuration onto app options.
func appOptions(cfg *config.Config, logger *slog.Logger) vroute.Options {
	return vroute.Options{
		Mode:         cfg.LocationMode(),
		Base:         cfg.Base,
		Canonicalize: cfg.Canonicalize,
		ActiveClass:  cfg.ActiveClass,
		RouteConfigs: cfg.Routes,
		Logger:       logger,
	}
}

// initialURL places key in the window the way the configured mode
// encodes it.
func initialURL(cfg *config.Config, key string) string {
	if cfg.LocationMode() == location.ModeHash {
		return "/#" + key
	}
	return strings.TrimSuffix(cfg.Base, "/") + key
}

// mountAt builds the app on an in-memory window showing key.
func mountAt(cfg *config.Config, logger *slog.Logger, key string) (*vroute.App, error) {
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	return vroute.New(browser.NewMemory(initialURL(cfg, key)), appOptions(cfg, logger))
}
