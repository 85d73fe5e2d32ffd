package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/arch"
	"github.com/armdeck/armdeck/internal/buildfiles"
	"github.com/armdeck/armdeck/internal/compose"
	"github.com/armdeck/armdeck/internal/engine"
	"github.com/armdeck/armdeck/internal/maven"
	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/internal/selector"
	"github.com/armdeck/armdeck/internal/source"
	"github.com/armdeck/armdeck/internal/term"
	"github.com/armdeck/armdeck/pkg/logger"
)

var pullBases bool

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Fetch, build and start the application stack",
	Long: `Up runs the full deployment: it clones the application sources if
needed, builds the artifact with Maven, picks base images matching the
host architecture, generates the Dockerfiles and compose file, and
starts the containers.

The command is idempotent. Sources already present are reused and
running containers are recreated only when their definition changed.`,
	Args: cobra.NoArgs,
	RunE: runUp,
}

func init() {
	upCmd.Flags().BoolVar(&pullBases, "pull", false, "Ask the registry for newer base images when building")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx, cancel := term.SetupSignalContext(cmd.Context())
	defer cancel()

	if err := checkTools(ctx); err != nil {
		return err
	}

	cfg, ws, err := loadDeployment()
	if err != nil {
		return err
	}

	if err := ws.Setup(); err != nil {
		return fmt.Errorf("failed to prepare workspace: %w", err)
	}
	if err := logger.InitWithFile(debug, ws.LogsDir()); err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}

	host := arch.Host()
	logger.Info().
		Str("project", cfg.Project).
		Str("arch", string(host)).
		Str("workspace", ws.Root()).
		Msg("starting deployment")

	// Sources
	cloned, err := source.NewFetcher(cfg.App.Repo, cfg.App.Branch).Ensure(ctx, ws.SourceDir())
	if err != nil {
		return fmt.Errorf("failed to fetch application sources: %w", err)
	}
	if !cloned {
		logger.Info().Str("dir", ws.SourceDir()).Msg("reusing existing sources")
	}

	// Build artifact
	run := &runner.DefaultCommandRunner{}
	artifact, err := maven.NewBuilder(run).Build(ctx, ws.SourceDir())
	if err != nil {
		return fmt.Errorf("application build failed: %w", err)
	}
	if err := maven.Install(artifact, ws.ArtifactPath()); err != nil {
		return fmt.Errorf("failed to stage build artifact: %w", err)
	}
	logger.Info().Str("artifact", artifact).Msg("application built")

	// Image selection
	eng, err := engine.NewEngine(ctx)
	if err != nil {
		var dockerErr *engine.DockerError
		if errors.As(err, &dockerErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), dockerErr.FormatUserError())
		}
		return err
	}
	defer eng.Close()

	sel := selector.Select(ctx, host, eng)

	// Build files
	if err := buildfiles.NewGenerator(cfg, ws).Write(sel); err != nil {
		return fmt.Errorf("failed to generate build files: %w", err)
	}

	// Make sure the selected bases are available before compose builds
	for _, ref := range []string{sel.Database, sel.Runtime} {
		if err := eng.EnsureImage(ctx, ref); err != nil {
			var dockerErr *engine.DockerError
			if errors.As(err, &dockerErr) {
				fmt.Fprintln(cmd.ErrOrStderr(), dockerErr.FormatUserError())
			}
			return err
		}
	}

	// Compose. Base images were already ensured above; building without
	// --pull keeps locally built bases (inventory-scan picks) usable.
	mgr := compose.NewManager(ws.ComposeFile(), cfg.Project, run)
	if err := mgr.Build(ctx, pullBases); err != nil {
		return fmt.Errorf("image build failed: %w", err)
	}
	if err := mgr.Up(ctx); err != nil {
		return fmt.Errorf("failed to start services: %w", err)
	}

	logger.Info().
		Int("app_port", cfg.App.Port).
		Int("db_port", cfg.Database.Port).
		Msg("stack is up")
	fmt.Fprintf(cmd.OutOrStdout(), "Application available at http://localhost:%d\n", cfg.App.Port)
	return nil
}

// checkTools verifies the external commands the deployment shells out to.
func checkTools(ctx context.Context) error {
	if !runner.LookPath("docker") {
		return fmt.Errorf("docker not found in PATH, install Docker first")
	}
	if !runner.LookPath("mvn") {
		return fmt.Errorf("mvn not found in PATH, install Maven first")
	}
	run := &runner.DefaultCommandRunner{}
	if _, err := run.Output(ctx, "docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose plugin not available: %w", err)
	}
	return nil
}
