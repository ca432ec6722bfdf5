package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "simplicity"

type Config struct {
	DefaultFolder string   `koanf:"default_folder"` // scanned when no folder argument is given
	Notifications *bool    `koanf:"notifications"`  // desktop notifications (default: true)
	MPRIS         *bool    `koanf:"mpris"`          // media key integration (default: true)
	Volume        *float64 `koanf:"volume"`         // 0.0-1.0 (default: 1.0)

	Scan     ScanConfig     `koanf:"scan"`
	Playback PlaybackConfig `koanf:"playback"`
}

// ScanConfig holds folder scan settings.
type ScanConfig struct {
	Workers    int      `koanf:"workers"`    // parallel metadata readers (1-64, default: 8)
	SortBy     string   `koanf:"sort_by"`    // "title" or "path" (default: "title")
	Extensions []string `koanf:"extensions"` // default: .mp3, .flac, .wav
}

// PlaybackConfig holds transport settings.
type PlaybackConfig struct {
	BackWindowMS int `koanf:"back_window_ms"` // double-press interval for back (50-5000, default: 500)
}

// Load reads the config files in priority order (last wins): the XDG config
// file, ./config.toml, then extraPath if not empty. extraPath must exist.
func Load(extraPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if extraPath != "" {
		extraPath = ExpandPath(extraPath)
		if _, err := os.Stat(extraPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(extraPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", extraPath, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = ExpandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/simplicity/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// LogFile returns the path of the log file, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// NotificationsEnabled returns true unless notifications are turned off.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled returns true unless the MPRIS server is turned off.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetVolume returns the startup volume, 1.0 when unset or out of range.
func (c *Config) GetVolume() float64 {
	if c.Volume == nil || *c.Volume < 0 || *c.Volume > 1 {
		return 1
	}
	return *c.Volume
}

// GetScanConfig returns the scan configuration with defaults applied.
func (c *Config) GetScanConfig() ScanConfig {
	cfg := c.Scan

	if cfg.Workers <= 0 || cfg.Workers > 64 {
		cfg.Workers = 8
	}

	cfg.SortBy = strings.ToLower(strings.TrimSpace(cfg.SortBy))
	if cfg.SortBy != "path" {
		cfg.SortBy = "title"
	}

	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		exts = []string{".mp3", ".flac", ".wav"}
	}
	cfg.Extensions = exts

	return cfg
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback
	if cfg.BackWindowMS < 50 || cfg.BackWindowMS > 5000 {
		cfg.BackWindowMS = 500
	}
	return cfg
}

// BackWindow returns the back double-press interval.
func (p PlaybackConfig) BackWindow() time.Duration {
	return time.Duration(p.BackWindowMS) * time.Millisecond
}
