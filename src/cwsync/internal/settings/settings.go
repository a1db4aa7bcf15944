// Package settings persists connection descriptors between daemon runs.
package settings

import (
	"fmt"
	"path/filepath"

	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const _configKeySettingsFile = "codewind.settingsFile"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Store reads and writes the persisted connection list.
type Store interface {
	LoadConnections() ([]model.ConnectionDescriptor, error)
	SaveConnections(descriptors []model.ConnectionDescriptor) error
}

// settingsFile is the on-disk YAML document.
type settingsFile struct {
	Connections []model.ConnectionDescriptor `yaml:"connections"`
}

type store struct {
	fs   fs.CwsyncFS
	path string
}

// Params define values used by the settings store.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.CwsyncFS
}

// New creates a Store. The file location comes from config, defaulting to
// cwsync/connections.yaml in the user's config directory.
func New(p Params) (Store, error) {
	var path string
	if err := p.Config.Get(_configKeySettingsFile).Populate(&path); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySettingsFile, err)
	}
	if path == "" {
		base, err := p.FS.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving settings location: %w", err)
		}
		path = filepath.Join(base, "cwsync", "connections.yaml")
	}
	return &store{fs: p.FS, path: path}, nil
}

// LoadConnections returns the persisted descriptors. A missing file is not
// an error; it means no connections have been saved yet.
func (s *store) LoadConnections() ([]model.ConnectionDescriptor, error) {
	exists, err := s.fs.FileExists(s.path)
	if err != nil {
		return nil, fmt.Errorf("checking settings file %s: %w", s.path, err)
	}
	if !exists {
		return nil, nil
	}

	raw, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", s.path, err)
	}
	var doc settingsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", s.path, err)
	}
	return doc.Connections, nil
}

// SaveConnections replaces the persisted descriptor list.
func (s *store) SaveConnections(descriptors []model.ConnectionDescriptor) error {
	raw, err := yaml.Marshal(settingsFile{Connections: descriptors})
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := s.fs.WriteFile(s.path, raw); err != nil {
		return fmt.Errorf("writing settings file %s: %w", s.path, err)
	}
	return nil
}
