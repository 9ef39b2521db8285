// Package config loads runner settings from an optional .env file and the
// process environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvYear        = "AOC_YEAR"
	EnvInputDir    = "AOC_INPUT_DIR"
	EnvSession     = "AOC_SESSION"
	EnvSessionFile = "AOC_SESSION_FILE"
	EnvDB          = "AOC_DB"

	DefaultYear = 2025
	DefaultDB   = "answers.sqlite3"
)

// Config holds the runner settings.
type Config struct {
	Year     int
	InputDir string
	// Session is the adventofcode.com session cookie. It may be empty if
	// every input is already cached.
	Session string
	// DB is the answer history path. Empty disables the history.
	DB string
}

// Load reads envFile if it exists and overlays the environment. An empty
// envFile skips the file.
func Load(envFile string) (*Config, error) {
	var file map[string]string
	if envFile != "" {
		var err error
		file, err = godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
	return fromLookup(lookup)
}

func fromLookup(lookup func(string) (string, bool)) (*Config, error) {
	c := &Config{
		Year:     DefaultYear,
		InputDir: ".",
		DB:       DefaultDB,
	}
	if v, ok := lookup(EnvYear); ok && v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvYear, err)
		}
		c.Year = y
	}
	if v, ok := lookup(EnvInputDir); ok && v != "" {
		c.InputDir = v
	}
	if v, ok := lookup(EnvDB); ok {
		c.DB = v
	}

	if v, ok := lookup(EnvSession); ok && v != "" {
		c.Session = strings.TrimSpace(v)
		return c, nil
	}
	sessionFile, ok := lookup(EnvSessionFile)
	if !ok || sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		sessionFile = filepath.Join(home, "keys", "aoc.session")
	}
	b, err := os.ReadFile(sessionFile)
	switch {
	case err == nil:
		c.Session = strings.TrimSpace(string(b))
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return c, nil
}
