package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/deary/internal/staging"
)

// RepoDirName is the journal directory under the home directory.
const RepoDirName = ".deary"

// Default author identity written into the repository's git config.
const (
	DefaultAuthorName  = "noname"
	DefaultAuthorEmail = "noemail"
)

// Env looks up an environment variable, like os.LookupEnv.
type Env func(key string) (string, bool)

// Settings is the fully resolved configuration.
type Settings struct {
	ConfigPath string
	RepoPath   string

	// Editor is empty when nothing is configured, leaving the choice to the editor package.
	Editor string

	GPGBinary string
	GPGArgs   []string

	StagingDir string

	AuthorName  string
	AuthorEmail string

	// UnknownKeys lists config file keys that were ignored.
	UnknownKeys []string
}

// GitConfig returns the identity to write into a new repository.
func (s *Settings) GitConfig() map[string]string {
	return map[string]string{
		"user.name":  s.AuthorName,
		"user.email": s.AuthorEmail,
	}
}

func lookup(env Env, key string) string {
	if env == nil {
		return ""
	}
	v, ok := env(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func homeDir(env Env) (string, error) {
	if home := lookup(env, "HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return home, nil
}

// DefaultConfigPath returns DEARY_CONFIG, or config.toml under the XDG config directory.
func DefaultConfigPath(env Env) (string, error) {
	if p := lookup(env, "DEARY_CONFIG"); p != "" {
		return p, nil
	}

	configDir := lookup(env, "XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := homeDir(env)
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "deary", "config.toml"), nil
}

// Load resolves settings from defaults, the config file at configPath (the
// default location when empty) and env.
func Load(configPath string, env Env) (*Settings, error) {
	home, err := homeDir(env)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath, err = DefaultConfigPath(env)
		if err != nil {
			return nil, err
		}
	}

	file, unknown, err := LoadFileConfig(configPath)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		ConfigPath:  configPath,
		RepoPath:    filepath.Join(home, RepoDirName),
		StagingDir:  staging.DefaultDir(),
		AuthorName:  DefaultAuthorName,
		AuthorEmail: DefaultAuthorEmail,
		UnknownKeys: unknown,
	}

	if file.Journal.Path != "" {
		s.RepoPath = expandHome(file.Journal.Path, home)
	}
	if file.Editor.Command != "" {
		s.Editor = file.Editor.Command
	}
	if file.GPG.Binary != "" {
		s.GPGBinary = expandHome(file.GPG.Binary, home)
	}
	for _, arg := range file.GPG.Args {
		s.GPGArgs = append(s.GPGArgs, expandHome(arg, home))
	}
	if file.Staging.Dir != "" {
		s.StagingDir = expandHome(file.Staging.Dir, home)
	}
	if file.Author.Name != "" {
		s.AuthorName = file.Author.Name
	}
	if file.Author.Email != "" {
		s.AuthorEmail = file.Author.Email
	}

	if v := lookup(env, "DEARY_DIR"); v != "" {
		s.RepoPath = expandHome(v, home)
	}
	if v := firstSet(env, "DEARY_EDITOR", "VISUAL", "EDITOR"); v != "" {
		if file.Editor.Command == "" || lookup(env, "DEARY_EDITOR") != "" {
			s.Editor = v
		}
	}
	if v := lookup(env, "DEARY_GPG"); v != "" {
		s.GPGBinary = v
	}

	if !filepath.IsAbs(s.RepoPath) {
		abs, err := filepath.Abs(s.RepoPath)
		if err != nil {
			return nil, fmt.Errorf("resolving journal path: %w", err)
		}
		s.RepoPath = abs
	}

	return s, nil
}

func firstSet(env Env, keys ...string) string {
	for _, k := range keys {
		if v := lookup(env, k); v != "" {
			return v
		}
	}
	return ""
}
