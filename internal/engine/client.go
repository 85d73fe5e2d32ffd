// Package engine wraps the Docker SDK with the operations armdeck needs:
// daemon connectivity, local image probes and image pulls. The compose
// lifecycle itself is driven through the docker CLI (internal/compose).
package engine

import (
	"context"

	"github.com/docker/docker/client"

	"github.com/armdeck/armdeck/pkg/logger"
)

// Engine wraps the Docker client with armdeck-specific operations
type Engine struct {
	cli *client.Client
}

// NewEngine creates a new Docker engine wrapper and verifies connectivity.
func NewEngine(ctx context.Context) (*Engine, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, ErrDockerNotRunning(err)
	}

	engine := &Engine{cli: cli}

	if err := engine.HealthCheck(ctx); err != nil {
		cli.Close()
		return nil, err
	}

	logger.Debug().Msg("docker engine connected")

	return engine, nil
}

// HealthCheck verifies Docker daemon connectivity
func (e *Engine) HealthCheck(ctx context.Context) error {
	_, err := e.cli.Ping(ctx)
	if err != nil {
		return ErrDockerNotRunning(err)
	}
	return nil
}

// Close releases Docker client resources
func (e *Engine) Close() error {
	return e.cli.Close()
}

// Client returns the underlying Docker client for advanced operations
func (e *Engine) Client() *client.Client {
	return e.cli
}
