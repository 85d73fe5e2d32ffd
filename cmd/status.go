package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/armdeck/armdeck/internal/compose"
	"github.com/armdeck/armdeck/internal/engine"
	"github.com/armdeck/armdeck/internal/runner"
	"github.com/armdeck/armdeck/internal/term"
	"github.com/armdeck/armdeck/pkg/logger"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the application stack",
	Long: `Status lists the stack's containers and the locally available base
images relevant to the deployment (MySQL and Java runtime images).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := term.SetupSignalContext(cmd.Context())
		defer cancel()

		cfg, ws, err := loadDeployment()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := printServiceStatus(ctx, ws.ComposeFile(), cfg.Project, &runner.DefaultCommandRunner{}, out); err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}

		eng, err := engine.NewEngine(ctx)
		if err != nil {
			// The container listing above already worked through the CLI,
			// so only note the missing image listing.
			logger.Debug().Err(err).Msg("skipping image listing")
			return nil
		}
		defer eng.Close()

		images, err := eng.ListImages(ctx)
		if err != nil {
			logger.Debug().Err(err).Msg("skipping image listing")
			return nil
		}

		printImageTable(out, images)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// printServiceStatus lists the composed services. A workspace that never
// ran up has no composition file; that is not an error, the stack simply
// does not exist yet.
func printServiceStatus(ctx context.Context, composeFile, project string, r runner.CommandRunner, out io.Writer) error {
	if _, err := os.Stat(composeFile); os.IsNotExist(err) {
		fmt.Fprintln(out, "Stack not created yet. Run 'armdeck up' to start it.")
		return nil
	}
	return compose.NewManager(composeFile, project, r).Status(ctx)
}

func relevantImage(ref string) bool {
	for _, s := range []string{"mysql", "openjdk", "temurin"} {
		if strings.Contains(ref, s) {
			return true
		}
	}
	return false
}

// printImageTable writes the base images relevant to the stack as an
// aligned REPOSITORY/TAG table.
func printImageTable(out io.Writer, refs []string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "\nRelevant local images:")
	fmt.Fprintln(w, "REPOSITORY\tTAG")
	found := false
	for _, ref := range refs {
		if !relevantImage(ref) {
			continue
		}
		repo, tag := ref, "latest"
		if i := strings.LastIndex(ref, ":"); i > 0 {
			repo, tag = ref[:i], ref[i+1:]
		}
		fmt.Fprintf(w, "%s\t%s\n", repo, tag)
		found = true
	}
	w.Flush()
	if !found {
		fmt.Fprintln(out, "  (none)")
	}
}
