package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	loader := NewLoader(t.TempDir())

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != 8085 {
		t.Errorf("App.Port = %d, want 8085", cfg.App.Port)
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("Database.Port = %d, want 3306", cfg.Database.Port)
	}
	if cfg.Workspace.Dir != "deploy" {
		t.Errorf("Workspace.Dir = %q, want %q", cfg.Workspace.Dir, "deploy")
	}
}

func TestLoadMergesPartialFileWithDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("project: petstore\napp:\n  repo: https://example.com/petstore.git\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Project != "petstore" {
		t.Errorf("Project = %q, want %q", cfg.Project, "petstore")
	}
	if cfg.App.Repo != "https://example.com/petstore.git" {
		t.Errorf("App.Repo = %q", cfg.App.Repo)
	}
	// Unset fields keep the defaults
	if cfg.App.Port != 8085 {
		t.Errorf("App.Port = %d, want default 8085", cfg.App.Port)
	}
	if cfg.Database.RootPassword == "" {
		t.Error("Database.RootPassword should keep the default")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader(dir).Load(); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: true,
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = "2" },
			wantErr: true,
		},
		{
			name:    "project with spaces",
			mutate:  func(c *Config) { c.Project = "my project" },
			wantErr: true,
		},
		{
			name:    "missing repo",
			mutate:  func(c *Config) { c.App.Repo = "" },
			wantErr: true,
		},
		{
			name:    "app port out of range",
			mutate:  func(c *Config) { c.App.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero database port",
			mutate:  func(c *Config) { c.Database.Port = 0 },
			wantErr: true,
		},
		{
			name:    "missing root password",
			mutate:  func(c *Config) { c.Database.RootPassword = "" },
			wantErr: true,
		},
		{
			name:    "missing workspace dir",
			mutate:  func(c *Config) { c.Workspace.Dir = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := NewValidator().Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMultiValidationErrorAggregates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = ""
	cfg.App.Repo = ""

	err := NewValidator().Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	multi, ok := err.(*MultiValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *MultiValidationError", err)
	}
	if len(multi.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(multi.Errors))
	}
}
