package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// ExecutableMode is applied to generated shell scripts.
const ExecutableMode os.FileMode = 0o755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsScript reports whether a generated file should be marked executable.
func IsScript(name string) bool {
	return filepath.Ext(name) == ".sh"
}

// MakeExecutable marks path as executable for owner, group and others.
func MakeExecutable(path string) error {
	return Chmod(path, ExecutableMode)
}
