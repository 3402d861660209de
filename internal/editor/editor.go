// Package editor runs the user's text editor against a plaintext file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	logger "github.com/PolarWolf314/deary/internal/logging"
)

// DefaultEditor is used when no editor is configured.
const DefaultEditor = "vim"

// Runner edits a file and blocks until the user is done.
type Runner interface {
	// Check verifies the editor can be located.
	Check() error

	// Edit opens path in the editor and returns once it exits successfully.
	Edit(ctx context.Context, path string) error
}

// Command launches an editor process attached to the terminal.
type Command struct {
	// Editor is the command line, e.g. "vim" or "code --wait". Empty means DefaultEditor.
	Editor string

	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger logger.Logger
}

func (c *Command) argv() []string {
	fields := strings.Fields(c.Editor)
	if len(fields) == 0 {
		return []string{DefaultEditor}
	}
	return fields
}

// Check resolves the editor executable.
func (c *Command) Check() error {
	_, err := c.lookPath()
	return err
}

func (c *Command) lookPath() (string, error) {
	name := c.argv()[0]
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: editor %s (set $EDITOR or [editor] command in the config): %v",
			kerrors.ErrToolNotFound, name, err)
	}
	return path, nil
}

// Edit implements Runner.
func (c *Command) Edit(ctx context.Context, path string) error {
	bin, err := c.lookPath()
	if err != nil {
		return err
	}

	args := append(c.argv()[1:], path)
	c.Logger.Debugf("Launching editor %s %s", bin, strings.Join(args, " "))

	//nolint:gosec
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &kerrors.ToolFailure{
				Tool:   bin,
				Status: exitErr.ExitCode(),
				Kind:   kerrors.ErrEditorFailed,
			}
		}
		return fmt.Errorf("%w: starting %s: %v", kerrors.ErrEditorFailed, bin, err)
	}
	return nil
}
