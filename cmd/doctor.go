package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
}

// resetDoctorCommandState resets the doctor command's global state for testing.
func resetDoctorCommandState() {
	doctorJSON = false
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the journal and its tools for problems",
	Long: `Runs health checks on the journal repository, the recipient file, gpg,
the editor, the staging directory and the working directory.

Exits with a non-zero status when any check reports an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting doctor command")

		result, err := newEngine(settings, Logger).Doctor(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if doctorJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal doctor result: %w", err)
			}
			fmt.Fprintln(out, string(data))
		} else {
			printDoctorResult(out, result)
		}

		if result.Summary.Errors > 0 {
			return errDoctorFailed
		}
		return nil
	},
}

var errDoctorFailed = errors.New("health checks failed")

func printDoctorResult(out io.Writer, result *workflows.DoctorResult) {
	for _, check := range result.Checks {
		var mark string
		switch check.Status {
		case workflows.CheckPass:
			mark = ui.Success.Sprint("✓")
		case workflows.CheckWarning:
			mark = ui.Warning.Sprint("⚠")
		default:
			mark = ui.Error.Sprint("✗")
		}
		fmt.Fprintf(out, "%s %-20s %s\n", mark, check.Name, ui.Muted.Sprint(check.Message))
	}

	fmt.Fprintf(out, "\n%d passed, %d warnings, %d errors\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Errors)

	for _, s := range result.Suggestions {
		fmt.Fprintln(out, ui.HintLine("%s", s))
	}
}
