package cmd

import (
	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/compose"
	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/internal/term"
)

var (
	followLogs bool
	tailLines  string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show logs from the application stack",
	Long: `Logs prints the combined output of the application and database
containers. With --follow the stream stays open until interrupted
with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := term.SetupSignalContext(cmd.Context())
		defer cancel()

		cfg, ws, err := loadDeployment()
		if err != nil {
			return err
		}

		mgr := compose.NewManager(ws.ComposeFile(), cfg.Project, &runner.DefaultCommandRunner{})
		return mgr.Logs(ctx, followLogs, tailLines)
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&followLogs, "follow", "f", false, "Follow log output")
	logsCmd.Flags().StringVar(&tailLines, "tail", "100", "Number of lines to show from the end of the logs")
	rootCmd.AddCommand(logsCmd)
}
