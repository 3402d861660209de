package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/utils"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
)

var listSort string

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "asc", "order entries: asc, desc or none")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listSort = "asc"
}

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"ls"},
	Short:   "List journal entries",
	Long: `Lists the names of the entries in the journal, oldest first.

An optional glob pattern narrows the list; ** and {a,b} are supported.

Examples:
  deary list
  deary list '202401*'
  deary list --sort desc`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		order, err := workflows.ParseSortOrder(listSort)
		if err != nil {
			return err
		}

		opts := workflows.ListOptions{Sort: order}
		if len(args) == 1 {
			opts.Pattern = args[0]
		}

		result, err := newEngine(settings, Logger).List(context.Background(), opts)
		if err != nil {
			return err
		}
		Logger.Debugf("Matched %d of %d entries", len(result.Names), result.Total)

		out := cmd.OutOrStdout()
		if len(result.Names) == 0 {
			if result.Total == 0 {
				fmt.Fprintln(out, "No entries found.")
			} else {
				fmt.Fprintln(out, "No entries found matching the pattern.")
			}
			return nil
		}

		// Plain names when piped, so the output can feed other commands.
		if !utils.IsStdoutTerminal() {
			for _, name := range result.Names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		for _, name := range result.Names {
			fmt.Fprintln(out, ui.Entry.Sprint(name))
		}
		fmt.Fprintln(out, ui.Muted.Sprint(utils.Plural(len(result.Names), "entry", "entries")))
		return nil
	},
}
