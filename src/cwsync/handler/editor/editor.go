// Package editor accepts JSON-RPC connections from editors and routes their
// requests to the connection controllers. Each editor connection gets its own
// router; outbound traffic to editors goes through the ide-client gateway.
package editor

import (
	"context"
	"fmt"

	"github.com/codewind/cwsync/src/cwsync/controller/connect"
	"github.com/codewind/cwsync/src/cwsync/controller/registry"
	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	"github.com/codewind/cwsync/src/cwsync/internal/jsonrpcfx"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler ties editor connections to the daemon's controllers.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// Params are inbound parameters to build the editor handler.
type Params struct {
	fx.In

	Registry registry.Controller
	Connect  connect.Controller
	IDE      ideclient.Gateway
	JSONRPC  jsonrpcfx.JSONRPCModule
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

type handler struct {
	registry registry.Controller
	connect  connect.Controller
	ide      ideclient.Gateway
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// New constructs the editor handler and registers it as the JSON-RPC
// connection manager.
func New(p Params) (Handler, error) {
	h := &handler{
		registry: p.Registry,
		connect:  p.Connect,
		ide:      p.IDE,
		logger:   p.Logger,
		stats:    p.Stats.SubScope("json_rpc"),
	}
	if err := p.JSONRPC.RegisterConnectionManager(h); err != nil {
		return nil, err
	}
	return h, nil
}

// NewConnection registers a new editor with the ide-client gateway and
// returns a router carrying the connection's UUID.
func (h *handler) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("assigning connection id: %w", err)
	}
	if err := h.ide.RegisterClient(ctx, id, conn); err != nil {
		return nil, fmt.Errorf("registering editor connection: %w", err)
	}

	return &jsonRPCRouter{
		handler: h,
		uuid:    id,
		stats:   h.stats,
	}, nil
}

// RemoveConnection cleans up a closed editor connection.
func (h *handler) RemoveConnection(ctx context.Context, id uuid.UUID) {
	if err := h.ide.DeregisterClient(ctx, id); err != nil {
		h.logger.Warnw("deregistering editor connection", "uuid", id, "error", err)
	}
}
