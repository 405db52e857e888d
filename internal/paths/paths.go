package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/opencode-kit/ocbundle/internal/errors"
)

// AppName is used for tool-owned config and cache directories.
const AppName = "ocbundle"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error. Use ResolveHome for error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ToolConfigDir returns the directory holding ocbundle's own config file.
// Returns: <ConfigHome>/ocbundle/
func ToolConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// GlobalOpenCodeDir returns the user-level OpenCode configuration directory.
// Returns: ~/.config/opencode/
// Returns an empty string if the home directory cannot be determined.
func GlobalOpenCodeDir() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "opencode")
}
