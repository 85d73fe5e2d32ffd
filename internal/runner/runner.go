// Package runner executes external commands behind a narrow interface so
// callers can be tested with fakes.
package runner

import (
	"context"
	"os"
	"os/exec"

	"github.com/armdeck/armdeck/pkg/logger"
)

// CommandRunner executes commands and reports their outcome.
type CommandRunner interface {
	// Run executes a command, streaming its output to the terminal.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultCommandRunner runs commands with os/exec.
type DefaultCommandRunner struct {
	// Dir is the working directory for commands; empty inherits the
	// process working directory.
	Dir string
}

var _ CommandRunner = &DefaultCommandRunner{}

func (d *DefaultCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	logger.Debug().Str("cmd", name).Strs("args", args).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = d.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func (d *DefaultCommandRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logger.Debug().Str("cmd", name).Strs("args", args).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = d.Dir
	out, err := cmd.CombinedOutput()
	logger.Debug().Str("cmd", name).Int("bytes", len(out)).Msg("command output captured")
	return string(out), err
}

// LookPath reports whether an executable is available on PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
