package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/compose"
	"github.com/armdeck/armdeck/internal/prompter"
	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/internal/term"
	"github.com/armdeck/armdeck/pkg/logger"
)

var cleanForce bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Stop the stack and remove the workspace",
	Long: `Clean stops the containers and deletes the cloned sources and
generated build files from the workspace. Log files are kept.

The command asks for confirmation unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := term.SetupSignalContext(cmd.Context())
		defer cancel()

		cfg, ws, err := loadDeployment()
		if err != nil {
			return err
		}

		if !cleanForce {
			msg := fmt.Sprintf("Remove sources and build files under %s?", ws.Root())
			if !prompter.PromptForConfirmation(cmd.InOrStdin(), cmd.ErrOrStderr(), msg) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		mgr := compose.NewManager(ws.ComposeFile(), cfg.Project, &runner.DefaultCommandRunner{})
		if err := mgr.Down(ctx); err != nil {
			// The compose file may already be gone, keep cleaning.
			logger.Warn().Err(err).Msg("could not stop services")
		}

		if err := ws.Clean(); err != nil {
			return fmt.Errorf("failed to clean workspace: %w", err)
		}

		logger.Info().Str("workspace", ws.Root()).Msg("workspace cleaned")
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}
