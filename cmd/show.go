package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/utils"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"read", "cat"},
	Short:   "Print a decrypted entry",
	Long: `Decrypts an entry and prints it to standard output. Nothing is written
to disk.

Without a name, an interactive picker lists the entries, newest first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		eng := newEngine(settings, Logger)

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			picked, err := pickEntry(eng)
			if isExpectedOutcome(err) {
				return nil
			}
			if err != nil {
				return err
			}
			name = picked
		}

		result, err := eng.Read(context.Background(), name)
		if err != nil {
			return err
		}
		defer func() {
			for i := range result.Plaintext {
				result.Plaintext[i] = 0
			}
		}()

		out := cmd.OutOrStdout()
		if _, err := out.Write(result.Plaintext); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
		if len(result.Plaintext) > 0 && result.Plaintext[len(result.Plaintext)-1] != '\n' && utils.IsStdoutTerminal() {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func pickEntry(eng *workflows.Engine) (string, error) {
	if !utils.Interactive() {
		return "", fmt.Errorf("an entry name is required when not running in a terminal")
	}

	listed, err := eng.List(context.Background(), workflows.ListOptions{Sort: workflows.SortAscending})
	if err != nil {
		return "", err
	}
	if len(listed.Names) == 0 {
		return "", fmt.Errorf("the journal has no entries yet")
	}

	return ui.SelectEntry("Select an entry", listed.Names)
}
