package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <key-id>",
	Short: "Create the journal repository",
	Long: `Creates the journal repository and records the gpg key entries are
encrypted to. The key is never generated or changed by deary.

Examples:
  deary init alice@example.com
  deary init 0x3AA5C34371567BD2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		spinner, cleanup := startSpinner(cmd, "Initializing journal...")
		defer cleanup()

		result, err := newEngine(settings, Logger).Init(context.Background(), workflows.InitOptions{
			Recipient: args[0],
			GitConfig: settings.GitConfig(),
		})
		if err != nil {
			return err
		}

		spinner.FinalMSG = banner() +
			ui.SuccessLine("Journal created at %s", ui.Path.Sprint(result.Path)) + "\n" +
			ui.HintLine("Entries will be encrypted to %s", ui.Highlight.Sprint(result.Recipient)) + "\n" +
			ui.HintLine("Run %s to write your first entry", ui.Code.Sprint("deary create"))
		return nil
	},
}

func banner() string {
	fig := figure.NewColorFigure("deary", "standard", "green", true)
	if ui.NoColor() {
		return fmt.Sprintln(fig.String())
	}
	return fmt.Sprintln(fig.ColorString())
}
