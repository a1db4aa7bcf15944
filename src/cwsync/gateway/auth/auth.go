// Package auth is the boundary to the external authentication capability.
// The editor owns the browser-based OIDC flow; this gateway asks it for
// tokens and caches them per host for the lifetime of the daemon.
package auth

import (
	"context"
	"sync"

	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"go.uber.org/zap"
)

// Gateway obtains and caches bearer tokens for authenticated servers.
type Gateway interface {
	// BearerToken returns the cached token for host, if one is known.
	BearerToken(host string) (string, bool)
	// Authenticate runs the editor's login flow for host and caches the
	// resulting token. Returns ErrAuthCancelled if the user backed out.
	Authenticate(ctx context.Context, host string) error
	// ClearToken drops the cached token for host, forcing the next
	// Authenticate to run the full flow.
	ClearToken(host string)
}

type gateway struct {
	ide    ideclient.Gateway
	logger *zap.SugaredLogger

	tokensMu sync.Mutex
	tokens   map[string]string
}

// New returns an auth Gateway backed by the editor's login flow.
func New(ide ideclient.Gateway, logger *zap.SugaredLogger) Gateway {
	return &gateway{
		ide:    ide,
		logger: logger,
		tokens: make(map[string]string),
	}
}

func (g *gateway) BearerToken(host string) (string, bool) {
	g.tokensMu.Lock()
	defer g.tokensMu.Unlock()
	token, ok := g.tokens[host]
	return token, ok
}

func (g *gateway) Authenticate(ctx context.Context, host string) error {
	token, err := g.ide.RequestAuthentication(ctx, host)
	if err != nil {
		return err
	}
	if token == "" {
		g.logger.Infof("login for %s was cancelled", host)
		return errors.ErrAuthCancelled
	}

	g.tokensMu.Lock()
	g.tokens[host] = token
	g.tokensMu.Unlock()
	return nil
}

func (g *gateway) ClearToken(host string) {
	g.tokensMu.Lock()
	defer g.tokensMu.Unlock()
	delete(g.tokens, host)
}
