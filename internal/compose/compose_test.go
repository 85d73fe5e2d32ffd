package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/pkg/logger"
)

func init() {
	logger.Init(false)
}

func newTestManager() (*Manager, *runner.FakeCommandRunner) {
	fake := &runner.FakeCommandRunner{}
	return NewManager("/deploy/build/docker-compose.yml", "armdeck", fake), fake
}

// Building without pull must not pass --pull: locally built base images
// that exist in no registry have to stay usable.
func TestBuildUsesLocalBases(t *testing.T) {
	m, fake := newTestManager()

	require.NoError(t, m.Build(context.Background(), false))
	require.Len(t, fake.Calls, 1)
	assert.Equal(t,
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck build",
		fake.Calls[0].String())
}

func TestBuildWithPull(t *testing.T) {
	m, fake := newTestManager()

	require.NoError(t, m.Build(context.Background(), true))
	assert.Equal(t,
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck build --pull",
		fake.Calls[0].String())
}

func TestUpDownStatus(t *testing.T) {
	m, fake := newTestManager()

	require.NoError(t, m.Up(context.Background()))
	require.NoError(t, m.Down(context.Background()))
	require.NoError(t, m.Status(context.Background()))

	assert.Equal(t, []string{
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck up -d",
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck down",
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck ps -a",
	}, fake.CommandLines())
}

func TestLogsFollow(t *testing.T) {
	m, fake := newTestManager()

	require.NoError(t, m.Logs(context.Background(), true, "100"))
	assert.Equal(t,
		"docker compose -f /deploy/build/docker-compose.yml -p armdeck logs --tail 100 --follow",
		fake.Calls[0].String())
}

func TestLogsCancelledContextIsNotAnError(t *testing.T) {
	fake := &runner.FakeCommandRunner{Err: errors.New("signal: interrupt")}
	m := NewManager("compose.yml", "armdeck", fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, m.Logs(ctx, true, "all"))
}

func TestCommandFailuresPropagate(t *testing.T) {
	fake := &runner.FakeCommandRunner{Err: errors.New("exit status 1")}
	m := NewManager("compose.yml", "armdeck", fake)
	ctx := context.Background()

	assert.Error(t, m.Build(ctx, false))
	assert.Error(t, m.Up(ctx))
	assert.Error(t, m.Down(ctx))
	assert.Error(t, m.Status(ctx))
	assert.Error(t, m.Logs(ctx, false, "100"))
}
