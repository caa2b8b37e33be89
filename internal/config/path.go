// Package config holds helpers for locating the database and config files.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a user-supplied file path, such as the database.path
// config value, into an absolute-ish path: a leading ~ becomes the home
// directory and $VAR references are expanded from the environment. Paths that
// need no expansion pass through unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			if path == "~" {
				path = home
			} else if strings.HasPrefix(path, "~/") {
				path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
			}
		}
	}
	return os.ExpandEnv(path)
}
