package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/deary/internal/configs"
	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Prints the settings deary runs with, after merging the defaults, the
config file and the environment (DEARY_DIR, DEARY_EDITOR, VISUAL, EDITOR,
DEARY_GPG).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		editorCmd := settings.Editor
		if editorCmd == "" {
			editorCmd = "vim " + ui.Muted.Sprint("default")
		}
		gpg := settings.GPGBinary
		if gpg == "" {
			gpg = "gpg " + ui.Muted.Sprint("from PATH")
		}

		configFile := ui.Path.Sprint(settings.ConfigPath)
		if _, err := os.Stat(settings.ConfigPath); os.IsNotExist(err) {
			configFile += " " + ui.Muted.Sprint("not present")
		}

		rows := [][2]string{
			{"config file", configFile},
			{"journal", ui.Path.Sprint(settings.RepoPath)},
			{"editor", editorCmd},
			{"gpg", gpg},
			{"gpg args", strings.Join(settings.GPGArgs, " ")},
			{"staging dir", ui.Path.Sprint(settings.StagingDir)},
			{"author", fmt.Sprintf("%s <%s>", settings.AuthorName, settings.AuthorEmail)},
		}
		for _, row := range rows {
			fmt.Fprintf(out, "%-12s %s\n", row[0]+":", row[1])
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(settings.ConfigPath); err == nil {
			return fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, settings.ConfigPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		cfg := &configs.FileConfig{
			Journal: configs.JournalConfig{Path: settings.RepoPath},
			Editor:  configs.EditorConfig{Command: settings.Editor},
			GPG:     configs.GPGConfig{Binary: settings.GPGBinary, Args: settings.GPGArgs},
			Staging: configs.StagingConfig{Dir: settings.StagingDir},
			Author:  configs.AuthorConfig{Name: settings.AuthorName, Email: settings.AuthorEmail},
		}
		if err := configs.SaveFileConfig(settings.ConfigPath, cfg); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessLine("Wrote %s", ui.Path.Sprint(settings.ConfigPath)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
