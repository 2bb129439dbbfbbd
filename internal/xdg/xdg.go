package xdg

import (
	"os"
	"path/filepath"
)

// Dirs resolves XDG Base Directory Specification paths. Only the config
// surface is exposed; the tool keeps no data, state, or cache.
type Dirs struct {
	configHome string
	configDirs []string
}

// NewDirs resolves the XDG config directories, applying the defaults the
// XDG specification mandates for unset variables.
func NewDirs() *Dirs {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			homeDir = "/tmp"
		}
	}

	d := &Dirs{}

	// XDG_CONFIG_HOME: user-specific configuration files
	d.configHome = os.Getenv("XDG_CONFIG_HOME")
	if d.configHome == "" {
		d.configHome = filepath.Join(homeDir, ".config")
	}

	// XDG_CONFIG_DIRS: preference-ordered base directories for configuration
	configDirsEnv := os.Getenv("XDG_CONFIG_DIRS")
	if configDirsEnv == "" {
		d.configDirs = []string{"/etc/xdg"}
	} else {
		d.configDirs = filepath.SplitList(configDirsEnv)
	}

	return d
}

// ConfigHome returns the base directory for user-specific configuration files.
func (d *Dirs) ConfigHome() string {
	return d.configHome
}

// ConfigDirs returns the preference-ordered base directories for
// configuration files, user-specific first.
func (d *Dirs) ConfigDirs() []string {
	return append([]string{d.configHome}, d.configDirs...)
}

// AppConfigDir returns the application-specific config directory.
func (d *Dirs) AppConfigDir(appName string) string {
	return filepath.Join(d.configHome, appName)
}
