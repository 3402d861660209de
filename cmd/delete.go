package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/utils"
	"github.com/spf13/cobra"
)

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "delete without asking for confirmation")
}

// resetDeleteCommandState resets the delete command's global state for testing.
func resetDeleteCommandState() {
	deleteYes = false
}

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Long: `Removes an entry from the journal and commits the removal as
"Delete <name>". Earlier versions remain in the git history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting delete command for %s", name)

		if !deleteYes {
			if !utils.Interactive() {
				return fmt.Errorf("refusing to delete %s without confirmation; pass --yes", name)
			}
			ok, err := ui.Confirm(
				fmt.Sprintf("Delete entry %s?", name),
				"The entry stays in the history but disappears from the journal.",
			)
			if err != nil && !isExpectedOutcome(err) {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarningLine("Nothing was deleted"))
				return nil
			}
		}

		spinner, cleanup := startSpinner(cmd, "Deleting entry...")
		defer cleanup()

		result, err := newEngine(settings, Logger).Delete(context.Background(), name)
		if err != nil {
			return err
		}

		spinner.FinalMSG = ui.SuccessLine("Deleted entry %s", ui.Entry.Sprint(result.Name))
		return nil
	},
}
