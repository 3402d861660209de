package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
)

var cleanDryRun bool

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "show what would be removed without removing it")
}

// resetCleanCommandState resets the clean command's global state for testing.
func resetCleanCommandState() {
	cleanDryRun = false
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove partial files left by an interrupted run",
	Long: `Removes the partial ciphertext files deary writes while encrypting, when
a crash or kill left them behind. Entries and history are not touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting clean command")

		spinner, cleanup := startSpinner(cmd, "Looking for partial files...")
		defer cleanup()

		result, err := newEngine(settings, Logger).Clean(context.Background(), workflows.CleanOptions{DryRun: cleanDryRun})
		if err != nil {
			return err
		}

		switch {
		case len(result.Partials) == 0:
			spinner.FinalMSG = ui.SuccessLine("Nothing to clean")
		case result.DryRun:
			spinner.FinalMSG = ui.WarningLine("Would remove %d partial file(s):", len(result.Partials)) + "\n" +
				formatPartials(result.Partials)
		default:
			spinner.FinalMSG = ui.SuccessLine("Removed %d partial file(s)", result.RemovedCount)
		}
		return nil
	},
}

func formatPartials(names []string) string {
	var s string
	for _, name := range names {
		s += fmt.Sprintf("    - %s\n", ui.Path.Sprint(name))
	}
	return s
}
