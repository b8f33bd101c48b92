// Package config loads runtime settings from FIELDOPS_* environment variables
// and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/joho/godotenv"
)

const (
	EnvStartScreen = "FIELDOPS_START_SCREEN"
	EnvDarkMode    = "FIELDOPS_DARK_MODE"
	EnvLogFile     = "FIELDOPS_LOG_FILE"
	EnvLogActions  = "FIELDOPS_LOG_ACTIONS"
	EnvSeedFile    = "FIELDOPS_SEED_FILE"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

type Config struct {
	// StartScreen is the bottom frame of the navigation stack.
	StartScreen nav.Screen
	DarkMode    bool
	// LogFile receives action log lines while the TUI owns the terminal.
	LogFile string
	// LogActions logs actions to stderr from non-interactive commands.
	LogActions bool
	// SeedFile replaces the embedded fixture when set.
	SeedFile string
}

func DefaultConfig() Config {
	return Config{StartScreen: nav.Login}
}

// Load reads the given .env files (DefaultEnvFile when none are named) and
// then the process environment, which takes precedence. Missing files are
// skipped. Unparseable values keep their defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	fileVars := make(map[string]string)
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return DefaultConfig(), fmt.Errorf("reading %s: %w", f, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVars[key]
	}
	return fromLookup(lookup), nil
}

func fromLookup(lookup func(string) string) Config {
	cfg := DefaultConfig()

	if v := lookup(EnvStartScreen); v != "" {
		if s, err := nav.ParseScreen(v); err == nil {
			cfg.StartScreen = s
		}
	}
	if v := lookup(EnvDarkMode); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DarkMode = b
		}
	}
	if v := lookup(EnvLogActions); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogActions = b
		}
	}
	cfg.LogFile = lookup(EnvLogFile)
	cfg.SeedFile = lookup(EnvSeedFile)

	return cfg
}
