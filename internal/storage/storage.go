// Package storage provides XDG-compliant storage path management for
// turnstile.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "turnstile"

	logFilename = "turnstile.log"
)

// Manager handles storage operations with filesystem abstraction.
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem.
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// DataDir returns the XDG data directory for turnstile, creating it if
// necessary.
func (m *Manager) DataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// LogPath returns the full path to the turnstile log file.
func (m *Manager) LogPath() (string, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logFilename), nil
}
