// Package workspace owns the on-disk layout armdeck works in: the cloned
// source tree, the deployed artifact and the generated build files.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/armdeck/armdeck/pkg/logger"
)

// ArtifactName is the fixed name the built artifact is deployed under.
// The generated Dockerfile copies it by this name.
const ArtifactName = "app.jar"

// Workspace resolves paths under the deployment workspace root.
type Workspace struct {
	root string
}

// New resolves the workspace root. A relative dir is anchored at workDir.
func New(workDir, dir string) *Workspace {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}
	return &Workspace{root: dir}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string { return w.root }

// SourceDir is where the application repository is cloned.
func (w *Workspace) SourceDir() string { return filepath.Join(w.root, "src") }

// BuildDir holds the generated build files, the compose file and the
// deployed artifact. It doubles as the compose build context.
func (w *Workspace) BuildDir() string { return filepath.Join(w.root, "build") }

// LogsDir holds armdeck's own log files.
func (w *Workspace) LogsDir() string { return filepath.Join(w.root, "logs") }

// ArtifactPath is the deployed artifact location inside BuildDir.
func (w *Workspace) ArtifactPath() string { return filepath.Join(w.BuildDir(), ArtifactName) }

// ComposeFile is the generated composition file path.
func (w *Workspace) ComposeFile() string { return filepath.Join(w.BuildDir(), "docker-compose.yml") }

// AppDockerfile is the generated runtime build file path.
func (w *Workspace) AppDockerfile() string { return filepath.Join(w.BuildDir(), "Dockerfile.app") }

// DatabaseDockerfile is the generated database build file path.
func (w *Workspace) DatabaseDockerfile() string {
	return filepath.Join(w.BuildDir(), "Dockerfile.mysql")
}

// Setup creates the workspace directories. Safe to call repeatedly.
func (w *Workspace) Setup() error {
	for _, dir := range []string{w.root, w.SourceDir(), w.BuildDir(), w.LogsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating workspace directory %s: %w", dir, err)
		}
	}
	logger.Debug().Str("root", w.root).Msg("workspace ready")
	return nil
}

// Clean removes the fetched source, the deployed artifact and all
// generated build files. Logs are kept.
func (w *Workspace) Clean() error {
	for _, path := range []string{w.SourceDir(), w.BuildDir()} {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		logger.Info().Str("path", path).Msg("removed")
	}
	return nil
}
