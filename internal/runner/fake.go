package runner

import (
	"context"
	"strings"
)

// Call records one command execution against a FakeCommandRunner.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a shell-like line for assertions.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeCommandRunner records calls and returns canned results. It implements
// CommandRunner for tests.
type FakeCommandRunner struct {
	Calls []Call
	Out   string
	Err   error
	// ErrFor returns an error for a specific recorded call line; when set
	// it takes precedence over Err.
	ErrFor map[string]error
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) Run(_ context.Context, name string, args ...string) error {
	call := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, call)
	if f.ErrFor != nil {
		if err, ok := f.ErrFor[call.String()]; ok {
			return err
		}
	}
	return f.Err
}

func (f *FakeCommandRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	err := f.Run(ctx, name, args...)
	return f.Out, err
}

// CommandLines returns all recorded calls as shell-like lines.
func (f *FakeCommandRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
