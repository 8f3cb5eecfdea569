package common

import (
	"os"
	"path/filepath"
)

const appName = "morsewave"

func ConfigDir() string {
	return filepath.Join(configHome(), appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func configHome() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return dir
}
