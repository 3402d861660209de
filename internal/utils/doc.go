// Package utils provides small helpers shared by the deary commands.
//
// # Terminal Utilities
//
//   - IsTerminal, IsStdoutTerminal: TTY detection for prompts and the editor
//   - Interactive: both ends attached to a terminal
//
// # String Utilities
//
//   - FormatNames: renders entry names as an indented list
//   - Plural: picks the singular or plural noun for a count
package utils
