package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit <name>",
	Aliases: []string{"update"},
	Short:   "Edit an existing entry",
	Long: `Decrypts the entry into a memory-backed file, opens your editor on it and
re-encrypts the result. The entry keeps its name and the change is
committed as "Edit <name>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command for %s", args[0])

		result, err := newEngine(settings, Logger).Update(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessLine("Updated entry %s", ui.Entry.Sprint(result.Name)))
		return nil
	},
}
