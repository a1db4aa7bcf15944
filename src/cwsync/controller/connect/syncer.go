package connect

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Syncer prepares a local mirror directory for a workspace that lives on a
// remote cluster.
type Syncer interface {
	// EnsureWorkspace returns a local directory that mirrors remotePath on
	// the given host, creating it if needed.
	EnsureWorkspace(ctx context.Context, host string, remotePath string) (string, error)
}

// SyncerParams are inbound parameters to build the default syncer.
type SyncerParams struct {
	fx.In

	FS     fs.CwsyncFS
	Logger *zap.SugaredLogger
}

type localMirrorSyncer struct {
	fs     fs.CwsyncFS
	logger *zap.SugaredLogger
}

// NewSyncer creates a syncer that keeps per-host mirror directories under the
// user's config dir. Actual file transfer is delegated to the server's own
// sync tooling; this only guarantees the directory exists.
func NewSyncer(p SyncerParams) Syncer {
	return &localMirrorSyncer{fs: p.FS, logger: p.Logger}
}

func (s *localMirrorSyncer) EnsureWorkspace(ctx context.Context, host string, remotePath string) (string, error) {
	base, err := s.fs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	local := filepath.Join(base, "cwsync", "workspaces", host)
	if err := s.fs.MkdirAll(local); err != nil {
		return "", fmt.Errorf("creating mirror dir %s: %w", local, err)
	}
	s.logger.Infof("mirroring workspace %s on %s into %s", remotePath, host, local)
	return local, nil
}
