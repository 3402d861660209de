package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolarWolf314/deary/internal/cipher/ciphertest"
	"github.com/PolarWolf314/deary/internal/configs"
	"github.com/PolarWolf314/deary/internal/editor/editortest"
	logger "github.com/PolarWolf314/deary/internal/logging"
	"github.com/PolarWolf314/deary/internal/workflows"
)

// testEnv is an isolated home, journal and staging directory with fake
// gpg and editor.
type testEnv struct {
	home    string
	repo    string
	staging string
	cipher  *ciphertest.Tool
	editor  *editortest.Runner
	now     time.Time
}

// setupTestEnvironment points deary at temporary directories through the
// same environment variables a user would set.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	env := &testEnv{
		home:    home,
		repo:    filepath.Join(home, "journal"),
		staging: t.TempDir(),
		cipher:  &ciphertest.Tool{},
		editor:  &editortest.Runner{},
		now:     time.Date(2024, 1, 31, 8, 15, 0, 0, time.UTC),
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("DEARY_CONFIG", "")
	t.Setenv("DEARY_DIR", env.repo)
	t.Setenv("DEARY_EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("DEARY_GPG", "")
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(ResetGlobalState)
	return env
}

func (env *testEnv) clock() time.Time {
	env.now = env.now.Add(time.Second)
	return env.now
}

// run executes the CLI with args and returns everything it printed.
func (env *testEnv) run(args ...string) (string, error) {
	ResetGlobalState()
	newEngine = func(s *configs.Settings, log logger.Logger) *workflows.Engine {
		return workflows.New(s.RepoPath, workflows.Options{
			StagingDir: env.staging,
			Now:        env.clock,
			Logger:     log,
			Cipher:     env.cipher,
			Editor:     env.editor,
		})
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := Execute()
	return out.String(), err
}

// mustRun fails the test if the command fails.
func (env *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := env.run(args...)
	if err != nil {
		t.Fatalf("deary %v failed: %v\n%s", args, err, out)
	}
	return out
}
