package config

// Config represents the root configuration structure for armdeck.yaml
type Config struct {
	Version   string          `yaml:"version" mapstructure:"version"`
	Project   string          `yaml:"project" mapstructure:"project"`
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Database  DatabaseConfig  `yaml:"database" mapstructure:"database"`
	Workspace WorkspaceConfig `yaml:"workspace" mapstructure:"workspace"`
}

// AppConfig defines the Java application service
type AppConfig struct {
	Repo   string `yaml:"repo" mapstructure:"repo"`
	Branch string `yaml:"branch,omitempty" mapstructure:"branch"`
	Port   int    `yaml:"port" mapstructure:"port"`
}

// DatabaseConfig defines the MySQL service
type DatabaseConfig struct {
	Name         string `yaml:"name" mapstructure:"name"`
	Port         int    `yaml:"port" mapstructure:"port"`
	RootPassword string `yaml:"root_password" mapstructure:"root_password"`
}

// WorkspaceConfig defines where fetched source, the deployed artifact and
// generated build files live
type WorkspaceConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}
