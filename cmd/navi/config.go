package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vitalvas/navi/routefile"
	"github.com/vitalvas/navi/urlmatch"
)

// config is read from the environment.
type config struct {
	RoutesFile string `env:"NAVI_ROUTES"`
	LogLevel   string `env:"NAVI_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"NAVI_LOG_FORMAT" envDefault:"text"`
}

// rootOptions holds flags and the state built from them.
type rootOptions struct {
	routesFile string
	patterns   []string
	logLevel   string

	logger   *slog.Logger
	registry *urlmatch.Registry
	routes   *routefile.File
}

func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// load resolves configuration, builds the logger and reads the route file.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if o.routesFile == "" {
		o.routesFile = cfg.RoutesFile
	}
	if o.logLevel == "" {
		o.logLevel = cfg.LogLevel
	}

	o.logger, err = newLogger(cmd.ErrOrStderr(), o.logLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	o.registry = urlmatch.NewRegistry()
	if o.routesFile != "" {
		o.routes, err = routefile.Load(o.routesFile)
		if err != nil {
			return err
		}
		if err := o.routes.Apply(o.registry); err != nil {
			return err
		}
		o.logger.Debug("routes loaded", slog.String("file", o.routesFile), slog.Int("count", len(o.routes.Routes)))
	}
	return nil
}

// candidates returns the --pattern flags followed by the route file patterns.
func (o *rootOptions) candidates() []string {
	candidates := append([]string(nil), o.patterns...)
	if o.routes != nil {
		candidates = append(candidates, o.routes.Patterns()...)
	}
	return candidates
}

func (o *rootOptions) matcher() *urlmatch.Matcher {
	return urlmatch.New(urlmatch.WithRegistry(o.registry), urlmatch.WithLogger(o.logger))
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
