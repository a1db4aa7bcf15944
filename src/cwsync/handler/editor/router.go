package editor

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
)

// Custom methods accepted from the Codewind editor extension.
const (
	MethodConnections      = "codewind/connections"
	MethodNewConnection    = "codewind/newConnection"
	MethodRemoveConnection = "codewind/removeConnection"
	MethodRefresh          = "codewind/refresh"
	MethodProjects         = "codewind/projects"
	MethodTree             = "codewind/tree"
	MethodRestartProject   = "codewind/restartProject"
	MethodBuildProject     = "codewind/buildProject"
)

type jsonRPCRouter struct {
	handler *handler
	uuid    uuid.UUID
	stats   tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Connection management.
	case MethodConnections:
		return r.Connections(ctx, reply, req)

	case MethodNewConnection:
		return r.NewConnection(ctx, reply, req)

	case MethodRemoveConnection:
		return r.RemoveConnection(ctx, reply, req)

	case MethodRefresh:
		return r.Refresh(ctx, reply, req)

	// Project queries and actions.
	case MethodProjects:
		return r.Projects(ctx, reply, req)

	case MethodTree:
		return r.Tree(ctx, reply, req)

	case MethodRestartProject:
		return r.RestartProject(ctx, reply, req)

	case MethodBuildProject:
		return r.BuildProject(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
