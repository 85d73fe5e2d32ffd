package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armdeck/armdeck/pkg/logger"
)

func init() {
	logger.Init(false)
}

func TestNewResolvesRelativeDir(t *testing.T) {
	w := New("/work", "deploy")
	assert.Equal(t, filepath.Join("/work", "deploy"), w.Root())
}

func TestNewKeepsAbsoluteDir(t *testing.T) {
	w := New("/work", "/var/lib/armdeck")
	assert.Equal(t, "/var/lib/armdeck", w.Root())
}

func TestSetupIsIdempotent(t *testing.T) {
	w := New(t.TempDir(), "deploy")

	require.NoError(t, w.Setup())
	require.NoError(t, w.Setup())

	for _, dir := range []string{w.SourceDir(), w.BuildDir(), w.LogsDir()} {
		assert.DirExists(t, dir)
	}
}

func TestCleanRemovesSourceAndBuildButKeepsLogs(t *testing.T) {
	w := New(t.TempDir(), "deploy")
	require.NoError(t, w.Setup())

	require.NoError(t, os.WriteFile(w.ArtifactPath(), []byte("jar"), 0644))
	require.NoError(t, os.WriteFile(w.ComposeFile(), []byte("services:"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(w.SourceDir(), "pom.xml"), []byte("<project/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(w.LogsDir(), "armdeck.log"), []byte("log"), 0644))

	require.NoError(t, w.Clean())

	assert.NoDirExists(t, w.SourceDir())
	assert.NoDirExists(t, w.BuildDir())
	assert.FileExists(t, filepath.Join(w.LogsDir(), "armdeck.log"))
}

func TestCleanOnEmptyWorkspaceSucceeds(t *testing.T) {
	w := New(t.TempDir(), "deploy")
	require.NoError(t, w.Clean())
}
