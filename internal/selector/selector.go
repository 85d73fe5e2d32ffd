// Package selector resolves the base images for the database and runtime
// services. For each service it walks an ordered candidate list and picks
// the first image already present locally; when nothing is present it picks
// the policy default, which is pulled later. Probe failures count as
// "absent" so selection always makes forward progress.
package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/armdeck/armdeck/internal/arch"
	"github.com/armdeck/armdeck/pkg/logger"
)

// Service identifies one of the two composed services.
type Service string

const (
	// ServiceDatabase is the MySQL service.
	ServiceDatabase Service = "database"
	// ServiceRuntime is the Java application runtime service.
	ServiceRuntime Service = "runtime"
)

// Inventory is the read-only view of the local image store the selector
// consumes. internal/engine.Engine satisfies it; tests use fakes.
type Inventory interface {
	// ImageExists reports whether ref is present locally.
	ImageExists(ctx context.Context, ref string) (bool, error)
	// ListImages returns all local repo:tag references in daemon order.
	ListImages(ctx context.Context) ([]string, error)
}

// Selection is the resolved image pair for one run. It is created once
// during up and threaded explicitly into file generation and pulls.
type Selection struct {
	Database string // base image for the MySQL service
	Runtime  string // base image for the application runtime service
}

// Validate reports an error if either reference is empty. File generation
// must not proceed with an unresolved selection.
func (s Selection) Validate() error {
	if s.Database == "" {
		return fmt.Errorf("image selection incomplete: no database image")
	}
	if s.Runtime == "" {
		return fmt.Errorf("image selection incomplete: no runtime image")
	}
	return nil
}

// Select resolves the image pair for the given architecture class.
// The returned selection is always complete; inventory errors are treated
// as "image absent" and never propagated.
func Select(ctx context.Context, class arch.Class, inv Inventory) Selection {
	sel := Selection{
		Database: selectService(ctx, ServiceDatabase, class, inv),
		Runtime:  selectService(ctx, ServiceRuntime, class, inv),
	}

	logger.Info().
		Str("arch", string(class)).
		Str("database", sel.Database).
		Str("runtime", sel.Runtime).
		Msg("images selected")

	return sel
}

// selectService resolves a single service against its policy.
func selectService(ctx context.Context, svc Service, class arch.Class, inv Inventory) string {
	pol := policyFor(svc, class)

	for _, ref := range pol.Candidates {
		if imagePresent(ctx, inv, ref) {
			logger.Debug().
				Str("service", string(svc)).
				Str("image", ref).
				Msg("using local image")
			return ref
		}
	}

	if pol.ScanFilter != nil {
		if ref := scanInventory(ctx, inv, pol.ScanFilter); ref != "" {
			logger.Debug().
				Str("service", string(svc)).
				Str("image", ref).
				Msg("using local image found by inventory scan")
			return ref
		}
	}

	logger.Debug().
		Str("service", string(svc)).
		Str("image", pol.Default).
		Msg("no local candidate, defaulting (will pull)")
	return pol.Default
}

// imagePresent probes the inventory, mapping any probe error to "absent".
func imagePresent(ctx context.Context, inv Inventory, ref string) bool {
	exists, err := inv.ImageExists(ctx, ref)
	if err != nil {
		logger.Debug().Err(err).Str("image", ref).Msg("image probe failed, treating as absent")
		return false
	}
	return exists
}

// scanInventory lists local images and returns the first whose reference
// contains every filter substring. The daemon does not guarantee listing
// order, so the tie-break between multiple matches is unspecified.
func scanInventory(ctx context.Context, inv Inventory, substrings []string) string {
	refs, err := inv.ListImages(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("image listing failed, skipping inventory scan")
		return ""
	}

	for _, ref := range refs {
		if containsAll(ref, substrings) {
			return ref
		}
	}
	return ""
}

func containsAll(s string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
