package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
)

// FileConfig mirrors config.toml.
type FileConfig struct {
	Journal JournalConfig `toml:"journal"`
	Editor  EditorConfig  `toml:"editor"`
	GPG     GPGConfig     `toml:"gpg"`
	Staging StagingConfig `toml:"staging"`
	Author  AuthorConfig  `toml:"author"`
}

type JournalConfig struct {
	Path string `toml:"path,omitempty"`
}

type EditorConfig struct {
	Command string `toml:"command,omitempty"`
}

type GPGConfig struct {
	Binary string   `toml:"binary,omitempty"`
	Args   []string `toml:"args,omitempty"`
}

type StagingConfig struct {
	Dir string `toml:"dir,omitempty"`
}

type AuthorConfig struct {
	Name  string `toml:"name,omitempty"`
	Email string `toml:"email,omitempty"`
}

// LoadFileConfig reads the config file at path. A missing file yields an
// empty config.
func LoadFileConfig(path string) (*FileConfig, []string, error) {
	cfg := &FileConfig{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil, nil
	}

	unknown, err := LoadTOML(path, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}

	return cfg, unknown, nil
}

// SaveFileConfig writes cfg to path.
func SaveFileConfig(path string, cfg *FileConfig) error {
	if err := SaveTOML(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// expandHome replaces a leading "~" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
