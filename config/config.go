// Package config loads the game's runtime settings from command-line flags,
// falling back to DASHSHOT_* environment variables and then to defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const EnvPrefix = "DASHSHOT_"

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the settings for one run of the game.
type Config struct {
	Frontend   string
	Fullscreen bool
	// Width and Height size the window when not fullscreen, and the
	// logical play field of the terminal frontend.
	Width, Height int
	Seed          uint64
	Debug         bool
	Title         string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Frontend:   FrontendWindow,
		Fullscreen: true,
		Width:      1280,
		Height:     720,
		Title:      "dashshot",
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load parses args (without the program name). Environment variables
// supply the defaults that flags override.
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg, err := fromEnv(Default())
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend to run: window or terminal.")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Run fullscreen at the monitor resolution (window frontend).")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Play field width when not fullscreen.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Play field height when not fullscreen.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Enemy placement seed; 0 picks one at random.")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay (window frontend).")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}

	return errors.Join(errs...)
}

func fromEnv(cfg Config) (Config, error) {
	var err error

	cfg.Frontend = GetEnv(EnvPrefix+"FRONTEND", cfg.Frontend)
	cfg.Title = GetEnv(EnvPrefix+"TITLE", cfg.Title)

	if cfg.Fullscreen, err = envBool("FULLSCREEN", cfg.Fullscreen); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = envBool("DEBUG", cfg.Debug); err != nil {
		return cfg, err
	}
	if cfg.Width, err = envInt("WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt("HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}

	raw := GetEnv(EnvPrefix+"SEED", "")
	if raw != "" {
		if cfg.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return cfg, fmt.Errorf("parsing %sSEED: %w", EnvPrefix, err)
		}
	}

	return cfg, nil
}

func envBool(name string, fallback bool) (bool, error) {
	raw := GetEnv(EnvPrefix+name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("parsing %s%s: %w", EnvPrefix, name, err)
	}
	return v, nil
}

func envInt(name string, fallback int) (int, error) {
	raw := GetEnv(EnvPrefix+name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("parsing %s%s: %w", EnvPrefix, name, err)
	}
	return v, nil
}
