// Package logger provides levelled logging for deary commands.
//
// Verbosity is controlled by the --verbose and --debug flags on the root
// command:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Committed %s", name)
//
// The root command builds the logger in PersistentPreRun and hands it to the
// workflows engine through its options.
package logger
