package cmd

import (
	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/pkg/logger"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the application stack",
	Long: `Restart stops the stack and brings it back up. The up phase runs the
full deployment, so configuration or source changes are picked up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return restartSequence(
			func() error { return runDown(cmd, args) },
			func() error { return runUp(cmd, args) },
		)
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

// restartSequence runs down then up. A failed down (typically nothing
// running yet) is tolerated; the point of restart is the fresh start.
func restartSequence(down, up func() error) error {
	if err := down(); err != nil {
		logger.Warn().Err(err).Msg("stop failed, continuing with start")
	}
	return up()
}
