package cmd

import (
	"os"

	"github.com/PolarWolf314/deary/internal/cipher"
	"github.com/PolarWolf314/deary/internal/configs"
	"github.com/PolarWolf314/deary/internal/editor"
	logger "github.com/PolarWolf314/deary/internal/logging"
	"github.com/PolarWolf314/deary/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger
	settings   *configs.Settings

	// newEngine builds the engine every command runs against.
	newEngine = defaultEngine

	RootCmd = &cobra.Command{
		Use:   "deary",
		Short: "deary - an encrypted, version-controlled journal",
		Long: `deary keeps a journal of gpg-encrypted entries inside a git repository.

Every create, edit and delete is recorded as a commit, so the history of the
journal is auditable while the entries stay unreadable without your key.

Usage:
  deary init <key-id>     Create the journal
  deary create            Write a new entry
  deary list              List entries
  deary show <name>       Print an entry
  deary edit <name>       Edit an entry
  deary delete <name>     Delete an entry
  deary log               Show the change history
  deary doctor            Check the journal for problems`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing deary with verbose=%t, debug=%t", verbose, debug)

			s, err := configs.Load(configPath, os.LookupEnv)
			if err != nil {
				return err
			}
			for _, key := range s.UnknownKeys {
				Logger.Warnf("Ignoring unknown key %s in %s", key, s.ConfigPath)
			}
			Logger.Debugf("Using journal %s", s.RepoPath)

			settings = s
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/deary/config.toml)")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(doctorCmd)
	RootCmd.AddCommand(cleanCmd)
}

// Execute runs the root command and prints any error for the user.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		printError(RootCmd.ErrOrStderr(), err)
	}
	return err
}

func defaultEngine(s *configs.Settings, log logger.Logger) *workflows.Engine {
	return workflows.New(s.RepoPath, workflows.Options{
		StagingDir: s.StagingDir,
		Logger:     log,
		Cipher: &cipher.GPG{
			Binary: s.GPGBinary,
			Args:   s.GPGArgs,
			Logger: log,
		},
		Editor: &editor.Command{
			Editor: s.Editor,
			Logger: log,
		},
	})
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	settings = nil
	newEngine = defaultEngine
	resetListCommandState()
	resetDeleteCommandState()
	resetLogCommandState()
	resetDoctorCommandState()
	resetCleanCommandState()
	resetFlagState(RootCmd)
}

// resetFlagState clears the Changed marker on every flag so parsed values
// do not leak between test runs.
func resetFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlagState(sub)
	}
}
