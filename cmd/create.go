package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"new"},
	Short:   "Write a new entry",
	Long: `Opens your editor on an empty, memory-backed file. When the editor exits,
the text is encrypted into a new entry named after the current time
(YYYYMMDD-HHMMSS, UTC) and committed.

Quitting without writing anything discards the entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting create command")

		result, err := newEngine(settings, Logger).Create(context.Background())
		if isExpectedOutcome(err) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.WarningLine("Entry is empty, nothing was saved"))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessLine("Created entry %s", ui.Entry.Sprint(result.Name)))
		return nil
	},
}
