// Package store persists an append-only log of search results, keyed
// by board size, so a later session can review what a `go` command
// found without the search package itself growing any caching
// behavior (spec.md's no-transposition-table rule is about search, not
// about what the protocol loop does with a finished result). Grounded
// on the teacher's internal/storage: same badger backend, same XDG/
// platform data-directory convention, repurposed from UserPreferences/
// GameStats to a single append-only session log (type Log).
package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "shuuro-engine"

// DataDir returns the platform-specific data directory for the
// application, creating it if absent. Ported verbatim from the
// teacher's storage.GetDataDir, renaming only appName.
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabaseDir returns the directory the badger session log lives in.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
