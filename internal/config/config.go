// Package config loads tool configuration from a YAML file, with
// environment overrides (optionally via a .env file).
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store selects where events are persisted.
const (
	StoreFile = "file"
	StoreAPI  = "api"
)

// Config is the top-level tool configuration.
type Config struct {
	// Store is the persistence backend: "file" (local JSON store) or
	// "api" (remote event service).
	Store string `yaml:"store"`

	// EventsPath is the local store location when Store is "file".
	EventsPath string `yaml:"events_path"`

	// APIURL is the event service base URL when Store is "api".
	APIURL string `yaml:"api_url"`

	// PollSeconds is how often the reminder engine checks for due
	// events while watching.
	PollSeconds int `yaml:"poll_seconds"`

	// DefaultNotificationTime is the reminder lead time in minutes used
	// when an event is created without one.
	DefaultNotificationTime int `yaml:"default_notification_time"`
}

func Default() Config {
	return Config{
		Store:                   StoreFile,
		EventsPath:              defaultEventsPath(),
		APIURL:                  "http://localhost:3000",
		PollSeconds:             1,
		DefaultNotificationTime: 10,
	}
}

func defaultEventsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "events.json"
	}
	return filepath.Join(home, ".config", "iljeong", "events.json")
}

// Normalize fills missing/zero values with defaults so a partially
// filled config still behaves.
func (c *Config) Normalize() {
	def := Default()
	switch c.Store {
	case StoreFile, StoreAPI:
	default:
		c.Store = def.Store
	}
	if c.EventsPath == "" {
		c.EventsPath = def.EventsPath
	}
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.PollSeconds <= 0 {
		c.PollSeconds = def.PollSeconds
	}
	if c.DefaultNotificationTime < 0 {
		c.DefaultNotificationTime = def.DefaultNotificationTime
	}
}

// Load reads the config file at path (or the default location when path
// is empty), then applies environment overrides. A missing file is not an
// error; defaults apply.
//
// Recognized environment variables (also read from ./.env if present):
//   - ILJEONG_STORE    ("file" or "api")
//   - ILJEONG_EVENTS   (local store path)
//   - ILJEONG_API_URL  (event service base URL)
//   - ILJEONG_POLL_SECONDS
func Load(path string) (Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("ILJEONG_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "iljeong", "config.yaml")
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// first run, defaults apply
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if v := os.Getenv("ILJEONG_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("ILJEONG_EVENTS"); v != "" {
		cfg.EventsPath = v
	}
	if v := os.Getenv("ILJEONG_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("ILJEONG_POLL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PollSeconds = n
		}
	}

	cfg.Normalize()
	return cfg, nil
}
