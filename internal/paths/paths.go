package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "cmdtree"

	// HomeEnv overrides every path below when set.
	HomeEnv = "CMDTREE_HOME"
)

// AppDataDir returns the application data directory for config, logs and
// the audit database. Uses $CMDTREE_HOME when set, otherwise
// os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	path := os.Getenv(HomeEnv)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "."
		}
		path = filepath.Join(dir, appDirName)
	}

	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the rc file path. Outside of $CMDTREE_HOME the file
// lives in the user's home directory as .cmdtreerc.
func ConfigFilePath() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Join(dir, ".cmdtreerc"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdtreerc"), nil
}

func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdtree.log")
}

// AuditDBPath returns the path to the sqlite dispatch history.
func AuditDBPath() string {
	return filepath.Join(AppDataDir(), "audit.db")
}

// ManifestPath returns the default location of the command manifest.
func ManifestPath() string {
	return filepath.Join(AppDataDir(), "commands.yml")
}
