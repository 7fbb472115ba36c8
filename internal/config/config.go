package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "PORTFOLIO_TERM_LOG_LEVEL"

// Config is the persisted config file schema.
type Config struct {
	Prompt PromptConfig `toml:"prompt"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
	Source string       `toml:"-"`
}

// PromptConfig controls the user@host:dir$ marker.
type PromptConfig struct {
	User string `toml:"user"`
	Host string `toml:"host"`
	Dir  string `toml:"dir"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type UIConfig struct {
	// Inline keeps output in the normal screen buffer instead of the alt screen.
	Inline bool `toml:"inline"`
	Mouse  bool `toml:"mouse"`
}

func Default() Config {
	return Config{
		Prompt: PromptConfig{User: "arul", Host: "portfolio", Dir: "~"},
		Log:    LogConfig{Path: "logs/portfolio-term.log", Level: "info"},
		UI:     UIConfig{Mouse: true},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".portfolio-term", "config.toml")
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		cfg.Log.Level = env
	}
	return cfg
}
