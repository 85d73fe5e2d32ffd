package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/config"
	"github.com/armdeck/armdeck/internal/workspace"
	"github.com/armdeck/armdeck/pkg/logger"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"

	// Global flags
	debug   bool
	workDir string
)

// rootCmd represents the base command. Without a subcommand it runs the
// full deployment, matching `armdeck up`.
var rootCmd = &cobra.Command{
	Use:   "armdeck",
	Short: "Java web stack deployment for ARM hosts",
	Long: `Armdeck builds and runs a Java web application with its MySQL database
in Docker, picking base images that match the host architecture. Native
ARM images already present locally are preferred; otherwise generic
images are pulled.

Quick start:
  armdeck up         # Fetch, build and start the whole stack
  armdeck status     # Show services and relevant local images
  armdeck down       # Stop the stack

Running armdeck with no action is the same as 'armdeck up'.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with debug flag
		logger.Init(debug)

		// Set working directory
		if workDir == "" {
			var err error
			workDir, err = os.Getwd()
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to get working directory")
			}
		}

		logger.Debug().
			Str("version", Version).
			Str("workdir", workDir).
			Bool("debug", debug).
			Msg("armdeck starting")
	},
	RunE:    runUp,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "w", "", "Working directory (default: current directory)")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("armdeck %s (commit: %s)\n", Version, Commit))
}

// loadDeployment loads and validates the configuration and resolves the
// workspace. Shared by every action.
func loadDeployment() (*config.Config, *workspace.Workspace, error) {
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, workspace.New(workDir, cfg.Workspace.Dir), nil
}
