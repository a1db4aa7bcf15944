// Package infofile maintains a small JSON file advertising how running
// tooling can reach this daemon. Editors read it to discover the inbound
// address instead of hardcoding a port.
package infofile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyInfoFile = "serverInfoFilePath"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// InfoFile manages the contents of the daemon's discovery file. Fields are
// written as they become known during startup, and the file is removed on
// shutdown so a stale one never points at a dead process.
type InfoFile interface {
	UpdateField(key string, value string) error
}

type module struct {
	path     string
	fs       fs.CwsyncFS
	logger   *zap.SugaredLogger
	contents map[string]string
	mu       sync.Mutex
}

// Params define values to be used by InfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.CwsyncFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates an InfoFile managing the configured discovery file.
func New(p Params) (InfoFile, error) {
	m := module{
		fs:       p.FS,
		logger:   p.Logger,
		contents: make(map[string]string),
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return &m, nil
}

func (m *module) OnStop(ctx context.Context) error {
	if m.path != "" {
		if err := m.fs.Remove(m.path); err != nil {
			return err
		}
	}

	return nil
}

func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.contents[key] = value
	out, err := json.Marshal(m.contents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.WriteFile(m.path, out); err != nil {
		return fmt.Errorf("writing info file: %w", err)
	}
	m.logger.Infow("discovery info saved", zap.String("file", m.path), zap.String(key, value))
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyInfoFile)
	if err := val.Populate(&m.path); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}

	if m.path == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}

	return nil
}
