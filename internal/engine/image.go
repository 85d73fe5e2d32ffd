package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"

	"github.com/armdeck/armdeck/pkg/logger"
)

// ImageExists checks if an image exists locally
func (e *Engine) ImageExists(ctx context.Context, imageRef string) (bool, error) {
	_, _, err := e.cli.ImageInspectWithRaw(ctx, imageRef)
	if err != nil {
		if client.IsErrNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListImages returns the repo:tag references of all local images,
// in the order the daemon reports them. Untagged images are skipped.
func (e *Engine) ListImages(ctx context.Context) ([]string, error) {
	images, err := e.cli.ImageList(ctx, image.ListOptions{All: false})
	if err != nil {
		return nil, err
	}

	var refs []string
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == "<none>:<none>" {
				continue
			}
			refs = append(refs, tag)
		}
	}
	return refs, nil
}

// EnsureImage ensures an image is available locally, pulling if necessary
func (e *Engine) EnsureImage(ctx context.Context, imageRef string) error {
	exists, err := e.ImageExists(ctx, imageRef)
	if err != nil {
		return err
	}

	if exists {
		logger.Debug().Str("image", imageRef).Msg("image exists locally")
		return nil
	}

	logger.Info().Str("image", imageRef).Msg("pulling image")

	reader, err := e.cli.ImagePull(ctx, imageRef, image.PullOptions{})
	if err != nil {
		return ErrImagePullFailed(imageRef, err)
	}
	defer reader.Close()

	return processPullOutput(reader)
}

// processPullOutput processes and logs Docker pull progress output
func processPullOutput(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	var lastStatus string

	for scanner.Scan() {
		var event struct {
			Status   string `json:"status"`
			Progress string `json:"progress"`
			Error    string `json:"error"`
		}

		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}

		if event.Error != "" {
			return fmt.Errorf("pull error: %s", event.Error)
		}

		// Only log status changes
		status := event.Status
		if event.Progress != "" {
			status = fmt.Sprintf("%s %s", event.Status, event.Progress)
		}

		if status != lastStatus && event.Status != "" {
			if strings.Contains(event.Status, "Pull") ||
				strings.Contains(event.Status, "Download") ||
				strings.Contains(event.Status, "Extracting") {
				logger.Debug().Str("status", event.Status).Msg("pull progress")
			}
			lastStatus = status
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading pull output: %w", err)
	}

	logger.Info().Msg("image pull complete")
	return nil
}
