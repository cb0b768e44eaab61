package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Seed struct {
		Path string `yaml:"path"`
	} `yaml:"seed"`
	Streak struct {
		SweepCron string `yaml:"sweep_cron"`
	} `yaml:"streak"`
	Toast struct {
		Duration time.Duration `yaml:"duration"`
	} `yaml:"toast"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Avatar struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"avatar"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// envOverrides are read with the HUB_ prefix, e.g. HUB_SQLITE_PATH.
type envOverrides struct {
	SeedPath      string        `envconfig:"SEED_PATH"`
	SweepCron     string        `envconfig:"STREAK_SWEEP_CRON"`
	ToastDuration time.Duration `envconfig:"TOAST_DURATION"`
	SQLitePath    string        `envconfig:"SQLITE_PATH"`
	MetricsAddr   string        `envconfig:"METRICS_ADDR"`
	AvatarAPIKey  string        `envconfig:"AVATAR_API_KEY"`
	AvatarModel   string        `envconfig:"AVATAR_MODEL"`
	LogLevel      string        `envconfig:"LOG_LEVEL"`
}

// cronParser accepts the six-field (with seconds) specs the scheduler registers.
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var env envOverrides
	if err := envconfig.Process("HUB", &env); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if env.SeedPath != "" {
		cfg.Seed.Path = env.SeedPath
	}
	if env.SweepCron != "" {
		cfg.Streak.SweepCron = env.SweepCron
	}
	if env.ToastDuration != 0 {
		cfg.Toast.Duration = env.ToastDuration
	}
	if env.SQLitePath != "" {
		cfg.Database.SQLitePath = env.SQLitePath
	}
	if env.MetricsAddr != "" {
		cfg.Metrics.Addr = env.MetricsAddr
	}
	if env.AvatarAPIKey != "" {
		cfg.Avatar.APIKey = env.AvatarAPIKey
	}
	if env.AvatarModel != "" {
		cfg.Avatar.Model = env.AvatarModel
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if cfg.Avatar.APIKey == "" {
		cfg.Avatar.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Defaults
	if cfg.Streak.SweepCron == "" {
		cfg.Streak.SweepCron = "0 5 0 * * *"
	}
	if cfg.Toast.Duration == 0 {
		cfg.Toast.Duration = 2 * time.Second
	}
	if cfg.Avatar.Model == "" {
		cfg.Avatar.Model = "gemini-2.5-flash-image"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if _, err := cronParser.Parse(c.Streak.SweepCron); err != nil {
		return fmt.Errorf("streak.sweep_cron: %w", err)
	}
	if c.Toast.Duration <= 0 {
		return fmt.Errorf("toast.duration must be positive")
	}
	return nil
}
