package fs

import (
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// CwsyncFS wraps the filesystem operations used by cwsync.
type CwsyncFS interface {
	UserConfigDir() (string, error)
	MkdirAll(path string) error
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new CwsyncFS.
func New() CwsyncFS {
	return fsImpl{}
}

// UserConfigDir returns the user's configuration directory.
func (fsImpl) UserConfigDir() (string, error) { return os.UserConfigDir() }

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

// DirExists checks if the given directory exists.
func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// FileExists checks if the given file exists.
func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads the contents of the file.
func (fsImpl) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile writes data to the named file, creating it if necessary.
func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

// Remove removes the named file.
func (fsImpl) Remove(name string) error { return os.Remove(name) }
