package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/compose"
	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/internal/term"
	"github.com/armdeck/armdeck/pkg/logger"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove the application stack",
	Long: `Down stops the application and database containers and removes them
together with the compose network. Named volumes are kept, so the
database keeps its data across down/up cycles.`,
	Args: cobra.NoArgs,
	RunE: runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	ctx, cancel := term.SetupSignalContext(cmd.Context())
	defer cancel()

	cfg, ws, err := loadDeployment()
	if err != nil {
		return err
	}

	mgr := compose.NewManager(ws.ComposeFile(), cfg.Project, &runner.DefaultCommandRunner{})
	if err := mgr.Down(ctx); err != nil {
		return fmt.Errorf("failed to stop services: %w", err)
	}

	logger.Info().Str("project", cfg.Project).Msg("stack is down")
	return nil
}
