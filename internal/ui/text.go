package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if NoColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// NoColor reports whether output should be plain, honouring NO_COLOR
// (https://no-color.org/) and fatih/color's terminal detection.
func NoColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

var (
	Code      = Formatter{color.New(color.FgYellow), "`", "`"}
	Path      = Formatter{color.New(color.FgYellow), "", ""}
	Flag      = Formatter{color.New(color.FgYellow), "", ""}
	Success   = Formatter{color.New(color.FgGreen), "", ""}
	Error     = Formatter{color.New(color.FgRed), "", ""}
	Warning   = Formatter{color.New(color.FgYellow), "", ""}
	Info      = Formatter{color.New(color.FgCyan), "", ""}
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}
	Muted     = Formatter{color.New(color.FgHiBlack), "(", ")"}

	// Entry formats journal entry names.
	Entry = Formatter{color.New(color.FgCyan, color.Bold), "", ""}

	// Hash formats abbreviated commit hashes.
	Hash = Formatter{color.New(color.FgYellow), "", ""}

	// Date formats timestamps in history listings.
	Date = Formatter{color.New(color.FgHiBlack), "", ""}
)

// Operation returns the formatter for a history operation label.
func Operation(op string) Formatter {
	switch op {
	case "add":
		return Success
	case "edit":
		return Info
	case "delete":
		return Error
	default:
		return Formatter{color.New(color.FgWhite), "", ""}
	}
}

// SuccessLine renders "✓ msg".
func SuccessLine(format string, a ...interface{}) string {
	return Success.Sprint("✓") + " " + fmt.Sprintf(format, a...)
}

// ErrorLine renders "✗ msg".
func ErrorLine(format string, a ...interface{}) string {
	return Error.Sprint("✗") + " " + fmt.Sprintf(format, a...)
}

// WarningLine renders "⚠ msg".
func WarningLine(format string, a ...interface{}) string {
	return Warning.Sprint("⚠") + " " + fmt.Sprintf(format, a...)
}

// HintLine renders "→ msg".
func HintLine(format string, a ...interface{}) string {
	return Info.Sprint("→") + " " + fmt.Sprintf(format, a...)
}
