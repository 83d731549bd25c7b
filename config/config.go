package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/environment"

	"go.uber.org/config"
)

const defaultConfigDir = "config"

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name    string        `yaml:"name"`
	BaseURL string        `yaml:"base_url"`
	Teams   TeamsConfig   `yaml:"teams"`
	Session SessionConfig `yaml:"session"`
	Lock    LockConfig    `yaml:"lock"`
}

// TeamsConfig stores the settings used when forming teams
type TeamsConfig struct {
	MaxTeamSize      int `yaml:"max_team_size"`
	JoinCodeLength   int `yaml:"join_code_length"`
	JoinCodeAttempts int `yaml:"join_code_attempts"`
}

// SessionConfig stores the settings for starting and submitting hackathon sessions
type SessionConfig struct {
	AllowedDurations     []int `yaml:"allowed_durations"`
	MinDescriptionLength int   `yaml:"min_description_length"`
}

// LockConfig stores the settings of the per-user lock views
type LockConfig struct {
	TickIntervalSeconds     int `yaml:"tick_interval_seconds"`
	ResubscribeDelaySeconds int `yaml:"resubscribe_delay_seconds"`
	// IdleTimeoutMinutes is how long a view stays open without being used
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configDir := env.Get(environment.ConfigDir)
	if len(configDir) == 0 {
		configDir = defaultConfigDir
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(configDir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "development.yaml")))
	}
	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	return &cfg, nil
}
