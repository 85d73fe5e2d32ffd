// Package compose drives the docker compose CLI against the generated
// composition file. Every operation is synchronous and streams engine
// output straight to the terminal.
package compose

import (
	"context"
	"fmt"

	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/pkg/logger"
)

// Manager runs compose lifecycle operations for one project.
type Manager struct {
	file    string // path to the composition file
	project string // compose project name
	runner  runner.CommandRunner
}

// NewManager creates a compose manager for the given composition file.
func NewManager(file, project string, r runner.CommandRunner) *Manager {
	return &Manager{file: file, project: project, runner: r}
}

// args prefixes every compose invocation with the file and project flags.
func (m *Manager) args(rest ...string) []string {
	base := []string{"compose", "-f", m.file, "-p", m.project}
	return append(base, rest...)
}

// Build builds the service images from the locally present bases. With
// pull set the build asks the registry for newer bases instead, which
// fails for locally built images that exist in no registry.
func (m *Manager) Build(ctx context.Context, pull bool) error {
	args := m.args("build")
	if pull {
		args = append(args, "--pull")
	}
	logger.Info().Str("file", m.file).Msg("building service images")
	if err := m.runner.Run(ctx, "docker", args...); err != nil {
		return fmt.Errorf("compose build failed: %w", err)
	}
	return nil
}

// Up starts the stack in the background.
func (m *Manager) Up(ctx context.Context) error {
	logger.Info().Str("project", m.project).Msg("starting services")
	if err := m.runner.Run(ctx, "docker", m.args("up", "-d")...); err != nil {
		return fmt.Errorf("compose up failed: %w", err)
	}
	return nil
}

// Down stops and removes the composed services.
func (m *Manager) Down(ctx context.Context) error {
	logger.Info().Str("project", m.project).Msg("stopping services")
	if err := m.runner.Run(ctx, "docker", m.args("down")...); err != nil {
		return fmt.Errorf("compose down failed: %w", err)
	}
	return nil
}

// Logs streams service logs until ctx is cancelled.
func (m *Manager) Logs(ctx context.Context, follow bool, tail string) error {
	args := m.args("logs", "--tail", tail)
	if follow {
		args = append(args, "--follow")
	}
	if err := m.runner.Run(ctx, "docker", args...); err != nil {
		// Interrupting a followed log stream is not a failure.
		if ctx.Err() == context.Canceled {
			return nil
		}
		return fmt.Errorf("compose logs failed: %w", err)
	}
	return nil
}

// Status prints the composed service state. Read-only.
func (m *Manager) Status(ctx context.Context) error {
	if err := m.runner.Run(ctx, "docker", m.args("ps", "-a")...); err != nil {
		return fmt.Errorf("compose ps failed: %w", err)
	}
	return nil
}
