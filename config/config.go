package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	DefaultDriver   = "sqlite3"
	DefaultHost     = "localhost"
	DefaultUser     = "root"
	DefaultDatabase = "hotel_management.db"

	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
)

// Settings holds everything the application reads at startup: the
// database connection parameters and the initial window geometry.
type Settings struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// Default returns the settings used when no settings file exists yet.
func Default() Settings {
	return Settings{
		Driver:       DefaultDriver,
		Host:         DefaultHost,
		User:         DefaultUser,
		Database:     DefaultDatabase,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load reads settings from path, writing the defaults there on first
// run, then applies HMS_* environment overrides. A broken settings
// file falls back to the defaults rather than failing startup.
func Load(path string) Settings {
	s := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		saveDefaults(path)
	} else if err != nil {
		// Leave an existing but unreadable file alone.
		log.Printf("could not read settings file %s: %v", path, err)
	} else if err := json.Unmarshal(raw, &s); err != nil {
		log.Printf("invalid settings file %s: %v", path, err)
		s = Default()
	}

	s.Driver = getString("HMS_DB_DRIVER", s.Driver)
	s.Host = getString("HMS_DB_HOST", s.Host)
	s.User = getString("HMS_DB_USER", s.User)
	s.Password = getString("HMS_DB_PASSWORD", s.Password)
	s.Database = getString("HMS_DB_NAME", s.Database)
	s.WindowWidth = getInt("HMS_WINDOW_WIDTH", s.WindowWidth)
	s.WindowHeight = getInt("HMS_WINDOW_HEIGHT", s.WindowHeight)
	return s
}

// DSN builds the data source name for the configured driver. The
// sqlite3 driver treats Database as a file path; mysql-style drivers
// get the usual user:password@tcp(host)/database form.
func (s Settings) DSN() string {
	if s.Driver == "sqlite3" {
		return s.Database + "?_foreign_keys=1&_journal_mode=WAL"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", s.User, s.Password, s.Host, s.Database)
}

func saveDefaults(path string) {
	raw, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		log.Println(err)
		return
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		log.Printf("could not write default settings to %s: %v", path, err)
	}
}

// getString retrieves an environment variable or returns a fallback when unset.
func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getInt retrieves an environment variable as integer or returns fallback.
func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}
