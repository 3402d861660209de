// Package ui formats deary's terminal output and runs its interactive prompts.
//
// Formatters are semantic: pick them by what the text is, not by colour.
//
//	ui.Entry.Sprint("20240131-081500")   // entry names
//	ui.Hash.Sprint("3f2a9c1")            // commit hashes
//	ui.Path.Sprint("~/.deary")           // file paths
//	ui.Code.Sprint("deary init <key>")   // commands
//	ui.Muted.Sprint("no entries")        // secondary text
//
// When NO_COLOR is set or the terminal has no colour support, Code is
// wrapped in `backticks`, Highlight in 'quotes' and Muted in (parentheses).
package ui
