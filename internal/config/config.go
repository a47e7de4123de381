// Package config loads runtime configuration from defaults, an optional
// config.yaml, .env files and PTERM_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"portfolioterm/internal/logger"
)

// AppName names the config directory and the default file names.
const AppName = "portfolioterm"

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "PTERM"

// Config is the resolved runtime configuration.
type Config struct {
	ProjectSources []string
	AwardSources   []string
	GitHubUser     string
	GitHubAPI      string
	RepoURL        string
	RawBase        string
	LineDelay      time.Duration
	BootDelay      time.Duration
	FragmentDelay  time.Duration
	BootInterval   time.Duration
	HTTPTimeout    time.Duration
	StoragePath    string
	PreferTheme    string
	LogLevel       string
	LogFile        string
	NoAnimation    bool
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.projects", []string{
		"data/projects.json",
		"https://raw.githubusercontent.com/Rainier-PS/Personal-Website/main/data/projects.json",
	})
	v.SetDefault("data.awards", []string{
		"data/awards.json",
		"https://raw.githubusercontent.com/Rainier-PS/Personal-Website/main/data/awards.json",
	})
	v.SetDefault("github.user", "Rainier-PS")
	v.SetDefault("github.api", "https://github-contributions-api.jogruber.de/v4")
	v.SetDefault("repo.url", "https://github.com/Rainier-PS/Personal-Website")
	v.SetDefault("repo.raw_base", "https://raw.githubusercontent.com/Rainier-PS/Personal-Website/refs/heads/main/")
	v.SetDefault("typing.line_delay", 20*time.Millisecond)
	v.SetDefault("typing.boot_delay", 10*time.Millisecond)
	v.SetDefault("typing.fragment_delay", 10*time.Millisecond)
	v.SetDefault("boot.interval", 500*time.Millisecond)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("storage.path", "")
	v.SetDefault("appearance.prefer", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("no_animation", false)
}

// Dir returns the user config directory for the application.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves configuration into v. configFile, when set, must exist;
// otherwise config.yaml in the config dir is read if present. .env files in
// the config dir and the working directory are loaded into the environment
// without overriding variables that are already set.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	dir, dirErr := Dir()
	if dirErr != nil {
		logger.Debug("No user config dir", "error", dirErr)
	}

	loadDotEnv(filepath.Join(dir, ".env"), dirErr == nil)
	loadDotEnv(".env", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else if dirErr == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("Loaded config file", "path", used)
	}

	cfg := &Config{
		ProjectSources: v.GetStringSlice("data.projects"),
		AwardSources:   v.GetStringSlice("data.awards"),
		GitHubUser:     v.GetString("github.user"),
		GitHubAPI:      v.GetString("github.api"),
		RepoURL:        v.GetString("repo.url"),
		RawBase:        v.GetString("repo.raw_base"),
		LineDelay:      v.GetDuration("typing.line_delay"),
		BootDelay:      v.GetDuration("typing.boot_delay"),
		FragmentDelay:  v.GetDuration("typing.fragment_delay"),
		BootInterval:   v.GetDuration("boot.interval"),
		HTTPTimeout:    v.GetDuration("http.timeout"),
		StoragePath:    v.GetString("storage.path"),
		PreferTheme:    v.GetString("appearance.prefer"),
		LogLevel:       v.GetString("log.level"),
		LogFile:        v.GetString("log.file"),
		NoAnimation:    v.GetBool("no_animation"),
	}
	if cfg.StoragePath == "" && dirErr == nil {
		cfg.StoragePath = filepath.Join(dir, "settings.yaml")
	}
	if cfg.NoAnimation {
		cfg.DisableAnimation()
	}
	return cfg, nil
}

// DisableAnimation zeroes every typing and boot delay.
func (c *Config) DisableAnimation() {
	c.NoAnimation = true
	c.LineDelay = 0
	c.BootDelay = 0
	c.FragmentDelay = 0
	c.BootInterval = 0
}

func loadDotEnv(path string, ok bool) {
	if !ok {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logger.Warn("Failed to load .env file", "path", path, "error", err)
	}
}
