// Package config provides the global configuration directory for autofix.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the autofix configuration directory.
//
// Resolution:
//   - $AUTOFIX_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/autofix if set (respects XDG on any platform)
//   - %AppData%/autofix on Windows
//   - ~/.config/autofix on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("AUTOFIX_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autofix")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "autofix")
		}
	}

	// macOS and Linux: ~/.config/autofix
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "autofix")
}
