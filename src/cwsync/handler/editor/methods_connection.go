package editor

import (
	"context"

	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.lsp.dev/jsonrpc2"
)

// Connections returns a summary of every known connection.
func (r *jsonRPCRouter) Connections(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	sessions := r.handler.registry.Connections()
	result := make([]model.ConnectionSummary, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, mapper.ConnectionToSummary(s.Info(), s.IsConnected()))
	}
	return reply(ctx, result, nil)
}

// NewConnection validates a candidate server URL and adds the connection.
// Validation failures are returned as the error text the editor shows.
func (r *jsonRPCRouter) NewConnection(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToNewConnectionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	s, err := r.handler.connect.TryAddConnection(ctx, params.URL)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, mapper.ConnectionToSummary(s.Info(), s.IsConnected()), nil)
}

// RemoveConnection tears down the connection for a URL.
func (r *jsonRPCRouter) RemoveConnection(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConnectionURLParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	removed := r.handler.registry.RemoveConnection(ctx, params.URL)
	return reply(ctx, removed, nil)
}

// Refresh discards a connection's cached project list and repopulates it.
func (r *jsonRPCRouter) Refresh(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConnectionURLParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	s, ok := r.handler.registry.GetConnection(params.URL)
	if !ok {
		return reply(ctx, nil, &errors.ConnectionNotFoundError{URL: params.URL})
	}
	s.ForceRefresh(ctx)
	return reply(ctx, nil, nil)
}
