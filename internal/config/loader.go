package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFileName is the default configuration file name
const ConfigFileName = "armdeck.yaml"

// Loader handles loading and parsing of armdeck configuration
type Loader struct {
	workDir string
	viper   *viper.Viper
}

// NewLoader creates a new configuration loader for the given working directory
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
}

// Load reads the armdeck.yaml configuration file if present. A missing
// file is not an error: the built-in defaults describe a complete
// deployment and the file only overrides them.
func (l *Loader) Load() (*Config, error) {
	defaults := DefaultConfig()

	configPath := l.ConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults, nil
	}

	l.viper.SetConfigFile(configPath)
	l.viper.SetConfigType("yaml")

	// Set defaults so partial files inherit the fixed policy
	l.viper.SetDefault("version", defaults.Version)
	l.viper.SetDefault("project", defaults.Project)
	l.viper.SetDefault("app.repo", defaults.App.Repo)
	l.viper.SetDefault("app.branch", defaults.App.Branch)
	l.viper.SetDefault("app.port", defaults.App.Port)
	l.viper.SetDefault("database.name", defaults.Database.Name)
	l.viper.SetDefault("database.port", defaults.Database.Port)
	l.viper.SetDefault("database.root_password", defaults.Database.RootPassword)
	l.viper.SetDefault("workspace.dir", defaults.Workspace.Dir)

	if err := l.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// ConfigPath returns the full path to the config file
func (l *Loader) ConfigPath() string {
	return filepath.Join(l.workDir, ConfigFileName)
}

// Exists checks if the configuration file exists
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.ConfigPath())
	return err == nil
}
