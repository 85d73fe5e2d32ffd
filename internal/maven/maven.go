// Package maven compiles the application source and locates the resulting
// executable artifact.
package maven

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/pkg/logger"
)

// Builder drives the Maven build for a project directory.
type Builder struct {
	runner runner.CommandRunner
}

// NewBuilder creates a Builder using the given command runner.
func NewBuilder(r runner.CommandRunner) *Builder {
	return &Builder{runner: r}
}

// Build runs the Maven package phase in projectDir and returns the path of
// the produced artifact. Failing the build or finding no artifact is fatal
// to the caller.
func (b *Builder) Build(ctx context.Context, projectDir string) (string, error) {
	logger.Info().Str("dir", projectDir).Msg("building application")

	if err := b.runner.Run(ctx, "mvn", "-f", filepath.Join(projectDir, "pom.xml"), "clean", "package", "-DskipTests"); err != nil {
		return "", fmt.Errorf("maven build failed: %w", err)
	}

	artifact, err := FindArtifact(projectDir)
	if err != nil {
		return "", err
	}

	logger.Info().Str("artifact", artifact).Msg("build complete")
	return artifact, nil
}

// FindArtifact walks the build output tree under projectDir looking for an
// executable jar or war. Auxiliary artifacts whose names contain "sources"
// or "javadoc" are skipped. Returns an error when nothing matches; with
// several matches the first in walk order wins.
func FindArtifact(projectDir string) (string, error) {
	var matches []string

	err := filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Artifacts only ever land under target directories.
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".jar") && !strings.HasSuffix(name, ".war") {
			return nil
		}
		if strings.Contains(name, "sources") || strings.Contains(name, "javadoc") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != "target" {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching for build artifact: %w", err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("no build artifact found under %s", projectDir)
	}
	if len(matches) > 1 {
		logger.Warn().Strs("artifacts", matches).Msg("multiple artifacts found, using first")
	}
	return matches[0], nil
}

// Install copies the artifact to dest, overwriting any previous artifact.
func Install(artifact, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating deploy directory: %w", err)
	}

	src, err := os.Open(artifact)
	if err != nil {
		return fmt.Errorf("opening artifact: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copying artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	logger.Info().Str("artifact", artifact).Str("dest", dest).Msg("artifact installed")
	return nil
}
