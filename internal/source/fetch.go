// Package source fetches the application source tree with go-git.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"

	"github.com/armdeck/armdeck/pkg/logger"
)

// Fetcher clones the application repository into the workspace.
type Fetcher struct {
	URL    string
	Branch string // optional; empty clones the remote default branch
}

// NewFetcher creates a fetcher for the given repository URL.
func NewFetcher(url, branch string) *Fetcher {
	return &Fetcher{URL: url, Branch: branch}
}

// Ensure clones the repository into dest unless a repository is already
// there. An existing clone is left untouched, making repeated up runs
// idempotent. Returns true when a fresh clone was performed.
func (f *Fetcher) Ensure(ctx context.Context, dest string) (bool, error) {
	if existing, err := isRepository(dest); err != nil {
		return false, err
	} else if existing {
		logger.Debug().Str("dir", dest).Msg("source already present, skipping clone")
		return false, nil
	}

	logger.Info().Str("repo", f.URL).Str("dir", dest).Msg("cloning source")

	opts := &gogit.CloneOptions{
		URL:      f.URL,
		Progress: os.Stderr,
	}
	if f.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(f.Branch)
		opts.SingleBranch = true
	}

	if _, err := gogit.PlainCloneContext(ctx, dest, opts); err != nil {
		if errors.Is(err, gogit.ErrTargetDirNotEmpty) {
			return false, nil
		}
		return false, fmt.Errorf("cloning %s: %w", f.URL, err)
	}

	return true, nil
}

// isRepository reports whether dest holds a git repository.
func isRepository(dest string) (bool, error) {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", dest, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists and is not a directory", dest)
	}

	if _, err := gogit.PlainOpen(dest); err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			// Directory exists but is not a clone. Treat an empty directory
			// as absent; anything else is in the way.
			entries, readErr := os.ReadDir(dest)
			if readErr != nil {
				return false, fmt.Errorf("reading %s: %w", dest, readErr)
			}
			if len(entries) == 0 {
				return false, nil
			}
			return false, fmt.Errorf("%s exists but is not a git repository", dest)
		}
		return false, fmt.Errorf("opening repository at %s: %w", dest, err)
	}
	return true, nil
}
