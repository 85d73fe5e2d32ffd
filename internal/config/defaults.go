package config

// DefaultConfig returns the built-in configuration. Every field is covered
// so armdeck runs without an armdeck.yaml present.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Project: "armdeck",
		App: AppConfig{
			Repo: "https://github.com/spring-projects/spring-petclinic.git",
			Port: 8085,
		},
		Database: DatabaseConfig{
			Name:         "webapp",
			Port:         3306,
			RootPassword: "changeme",
		},
		Workspace: WorkspaceConfig{
			Dir: "deploy",
		},
	}
}
