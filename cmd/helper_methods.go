package cmd

import (
	"fmt"
	"time"

	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/PolarWolf314/deary/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner on stderr unless running verbose,
// debug or without a terminal. The returned cleanup stops it and prints
// FinalMSG, newline-terminated, to the command's stdout.
//
// Never keep a spinner running while the editor or gpg may take over the terminal.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && utils.IsStdoutTerminal()
	if animate {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	out := cmd.OutOrStdout()
	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}
