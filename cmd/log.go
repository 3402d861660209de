package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/deary/internal/audit"
	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logEntry     string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation: add, edit, delete (comma-separated)")
	logCmd.Flags().StringVar(&logEntry, "entry", "", "filter by entry name (glob)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries on or after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries on or before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logEntry = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the journal history",
	Long: `Displays every change recorded in the journal: when it happened, the
commit, the operation and the entry it touched.

Examples:
  deary log                              # Full history
  deary log -n 10                        # Last 10 changes
  deary log --reverse                    # Most recent first
  deary log --operation edit,delete      # Filter by operation
  deary log --entry '202401*'            # Filter by entry name
  deary log --since 2024-01-01           # Filter by date
  deary log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner(cmd, "Loading history...")
	defer cleanup()

	opts := workflows.LogOptions{
		Limit:   logLimit,
		Reverse: logReverse,
		Entry:   logEntry,
		Since:   logSince,
		Until:   logUntil,
	}
	if logOperation != "" {
		opts.Operations = strings.Split(logOperation, ",")
	}

	result, err := newEngine(settings, Logger).Log(context.Background(), opts)
	if err != nil {
		return err
	}

	Logger.Debugf("Read %d commits", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	spinner.FinalMSG = ""
	out := cmd.OutOrStdout()

	if logJSON {
		return outputLogJSON(out, result.Entries)
	}

	if len(result.Entries) == 0 {
		fmt.Fprintln(out, "No history entries found matching the filters.")
		return nil
	}

	if logOneline {
		outputLogOneline(out, result.Entries)
		return nil
	}

	outputLogDefault(out, result.Entries)
	return nil
}

func outputLogJSON(out io.Writer, entries []audit.Entry) error {
	data, err := audit.MarshalEntries(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputLogOneline(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(out, "%s %s %s\n", ui.Hash.Sprint(e.ShortHash()), ui.Operation(e.Operation).Sprint(e.Operation), describe(e))
	}
}

func outputLogDefault(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		datetime := e.Time().Local().Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "%s  %s  %s  %s\n",
			ui.Date.Sprint(datetime),
			ui.Hash.Sprint(e.ShortHash()),
			ui.Operation(e.Operation).Sprintf("%-6s", e.Operation),
			describe(e),
		)
	}
}

// describe names the entry a change touched, or falls back to the raw
// message for commits deary did not make.
func describe(e audit.Entry) string {
	if e.Name != "" {
		return ui.Entry.Sprint(e.Name)
	}
	return ui.Muted.Sprint(e.Message)
}
