// Package configs resolves deary's settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (~/.deary, vim, gpg from PATH, /dev/shm)
//  2. The TOML config file, by default $XDG_CONFIG_HOME/deary/config.toml
//  3. Environment variables
//
// # Config File
//
//	[journal]
//	path = "~/Documents/journal"
//
//	[editor]
//	command = "code --wait"
//
//	[gpg]
//	binary = "/usr/local/bin/gpg2"
//	args = ["--homedir", "~/.gnupg-journal"]
//
//	[staging]
//	dir = "/dev/shm"
//
//	[author]
//	name = "noname"
//	email = "noemail"
//
// # Environment
//
//   - DEARY_CONFIG: config file location
//   - DEARY_DIR: journal repository
//   - DEARY_EDITOR, then VISUAL, then EDITOR: editor command
//   - DEARY_GPG: gpg executable
//
// This is the only package that reads the environment. Everything it
// resolves is handed to the workflows engine explicitly.
package configs
