package cipher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	logger "github.com/PolarWolf314/deary/internal/logging"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "gpg"

// DefaultOptions are passed to every gpg invocation.
var DefaultOptions = []string{
	"--quiet",
	"--yes",
	"--compress-algo=none",
	"--no-encrypt-to",
}

// Tool encrypts files for a recipient and decrypts them again.
type Tool interface {
	// Check verifies the tool can be located.
	Check() error

	// Decrypt returns the plaintext of the file at path.
	Decrypt(ctx context.Context, path string) ([]byte, error)

	// Encrypt reads plainPath and writes ciphertext for recipient to cipherPath.
	Encrypt(ctx context.Context, plainPath, cipherPath, recipient string) error
}

// GPG runs the gpg executable.
type GPG struct {
	// Binary is an explicit executable name or path. Empty means DefaultBinary.
	Binary string

	// Args are appended after DefaultOptions.
	Args []string

	Logger logger.Logger
}

// Check resolves the gpg executable.
func (g *GPG) Check() error {
	_, err := g.lookPath()
	return err
}

func (g *GPG) lookPath() (string, error) {
	name := g.Binary
	if name == "" {
		name = DefaultBinary
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s (install GnuPG or set [gpg] binary in the config): %v",
			kerrors.ErrToolNotFound, name, err)
	}
	return path, nil
}

// Decrypt implements Tool.Decrypt.
func (g *GPG) Decrypt(ctx context.Context, path string) ([]byte, error) {
	args := append(g.options(), "--decrypt", path)
	return g.run(ctx, args)
}

// Encrypt implements Tool.Encrypt.
func (g *GPG) Encrypt(ctx context.Context, plainPath, cipherPath, recipient string) error {
	args := append(g.options(),
		"--encrypt",
		"--recipient", strings.TrimSpace(recipient),
		"--output", cipherPath,
		plainPath,
	)
	_, err := g.run(ctx, args)
	return err
}

func (g *GPG) options() []string {
	opts := make([]string, 0, len(DefaultOptions)+len(g.Args))
	opts = append(opts, DefaultOptions...)
	return append(opts, g.Args...)
}

func (g *GPG) run(ctx context.Context, args []string) ([]byte, error) {
	bin, err := g.lookPath()
	if err != nil {
		return nil, err
	}

	g.Logger.Debugf("Running %s %s", bin, strings.Join(args, " "))

	//nolint:gosec
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &kerrors.ToolFailure{
				Tool:   bin,
				Status: exitErr.ExitCode(),
				Stderr: stderr.String(),
				Kind:   kerrors.ErrToolFailed,
			}
		}
		return nil, fmt.Errorf("%w: starting %s: %v", kerrors.ErrToolFailed, bin, err)
	}

	return stdout.Bytes(), nil
}
