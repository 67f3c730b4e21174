package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Storage       StorageConfig       `koanf:"storage"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Scheduler     SchedulerConfig     `koanf:"scheduler"`
	UI            UIConfig            `koanf:"ui"`
}

type StorageConfig struct {
	Path string `koanf:"path"`
}

type NotificationsConfig struct {
	Enabled bool `koanf:"enabled"`
}

type SchedulerConfig struct {
	Buffer    int    `koanf:"buffer"`
	Lead      int    `koanf:"lead"`      // minutes before an event for the pre-event reminder
	Lookahead int    `koanf:"lookahead"` // hours of arming window
	Resync    string `koanf:"resync"`    // cron spec for the re-synchronization tick
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored"`
}

// Load layers defaults, then the optional YAML file at configPath, then
// YOTEI_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("YOTEI_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "YOTEI_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage path is required")
	}
	if c.Scheduler.Buffer <= 0 {
		return fmt.Errorf("scheduler buffer must be positive")
	}
	if c.Scheduler.Lead <= 0 {
		return fmt.Errorf("scheduler lead must be positive")
	}
	if c.Scheduler.Lookahead <= 0 {
		return fmt.Errorf("scheduler lookahead must be positive")
	}
	if strings.TrimSpace(c.Scheduler.Resync) == "" {
		return fmt.Errorf("scheduler resync spec is required")
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
