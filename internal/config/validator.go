package config

import (
	"fmt"
	"strings"
)

// Validator validates a Config for correctness
type Validator struct {
	errors []error
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{errors: []error{}}
}

// Validate checks the configuration for errors and returns all found issues
func (v *Validator) Validate(cfg *Config) error {
	v.errors = []error{}

	v.validateVersion(cfg)
	v.validateProject(cfg)
	v.validateApp(cfg)
	v.validateDatabase(cfg)
	v.validateWorkspace(cfg)

	if len(v.errors) > 0 {
		return &MultiValidationError{Errors: v.errors}
	}
	return nil
}

func (v *Validator) addError(field, message string, value interface{}) {
	v.errors = append(v.errors, &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	})
}

func (v *Validator) validateVersion(cfg *Config) {
	if cfg.Version == "" {
		v.addError("version", "is required", nil)
		return
	}
	if cfg.Version != "1" {
		v.addError("version", "must be '1' (only supported version)", cfg.Version)
	}
}

func (v *Validator) validateProject(cfg *Config) {
	if cfg.Project == "" {
		v.addError("project", "is required", nil)
		return
	}

	// Project name is used as the compose project name
	if strings.ContainsAny(cfg.Project, " \t\n/\\:*?\"<>|") {
		v.addError("project", "contains invalid characters (no spaces or special characters allowed)", cfg.Project)
	}

	if len(cfg.Project) > 64 {
		v.addError("project", "must be 64 characters or less", cfg.Project)
	}
}

func (v *Validator) validateApp(cfg *Config) {
	if cfg.App.Repo == "" {
		v.addError("app.repo", "is required", nil)
	}
	if cfg.App.Port < 1 || cfg.App.Port > 65535 {
		v.addError("app.port", "must be between 1 and 65535", cfg.App.Port)
	}
}

func (v *Validator) validateDatabase(cfg *Config) {
	if cfg.Database.Name == "" {
		v.addError("database.name", "is required", nil)
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		v.addError("database.port", "must be between 1 and 65535", cfg.Database.Port)
	}
	if cfg.Database.RootPassword == "" {
		v.addError("database.root_password", "is required", nil)
	}
}

func (v *Validator) validateWorkspace(cfg *Config) {
	if cfg.Workspace.Dir == "" {
		v.addError("workspace.dir", "is required", nil)
	}
}

// MultiValidationError aggregates all validation failures for one config
type MultiValidationError struct {
	Errors []error
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d configuration errors:", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
