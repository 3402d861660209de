package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/ui"
)

// printError writes err for the user, with a hint when one applies.
func printError(w io.Writer, err error) {
	fmt.Fprint(w, formatError(err))
}

func formatError(err error) string {
	var b strings.Builder

	var failure *kerrors.ToolFailure
	switch {
	case errors.As(err, &failure):
		b.WriteString(ui.ErrorLine("%s exited with status %d", failure.Tool, failure.Status))
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimSpace(failure.Stderr), "\n") {
			if line != "" {
				b.WriteString("    " + ui.Muted.Sprint(line) + "\n")
			}
		}
		if errors.Is(err, kerrors.ErrEditorFailed) {
			b.WriteString(ui.HintLine("Nothing was saved") + "\n")
		}
		return b.String()

	case errors.Is(err, kerrors.ErrNotFound) && !journalExists():
		b.WriteString(ui.ErrorLine("%v", err) + "\n")
		b.WriteString(ui.HintLine("Run %s first", ui.Code.Sprint("deary init <key-id>")) + "\n")

	case errors.Is(err, kerrors.ErrNotFound):
		b.WriteString(ui.ErrorLine("%v", err) + "\n")
		b.WriteString(ui.HintLine("Run %s to see existing entries", ui.Code.Sprint("deary list")) + "\n")

	case errors.Is(err, kerrors.ErrAlreadyExists):
		b.WriteString(ui.ErrorLine("%v", err) + "\n")

	case errors.Is(err, kerrors.ErrToolNotFound):
		b.WriteString(ui.ErrorLine("%v", err) + "\n")
		b.WriteString(ui.HintLine("Install it or point %s at it", ui.Path.Sprint(configFileHint())) + "\n")

	case errors.Is(err, kerrors.ErrStoreFailure):
		b.WriteString(ui.ErrorLine("%v", err) + "\n")
		b.WriteString(ui.HintLine("Inspect the repository with %s", ui.Code.Sprint("git status")) + "\n")

	default:
		b.WriteString(ui.ErrorLine("%v", err) + "\n")
	}

	return b.String()
}

// isExpectedOutcome reports errors that end a command without failing it.
func isExpectedOutcome(err error) bool {
	return errors.Is(err, kerrors.ErrEmptyEntry) || errors.Is(err, ui.ErrAborted)
}

func journalExists() bool {
	if settings == nil {
		return false
	}
	_, err := os.Stat(filepath.Join(settings.RepoPath, ".git"))
	return err == nil
}

func configFileHint() string {
	if settings == nil {
		return "the config file"
	}
	return settings.ConfigPath
}
