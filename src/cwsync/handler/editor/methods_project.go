package editor

import (
	"context"

	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.lsp.dev/jsonrpc2"
)

// Projects returns the project list of one connection.
func (r *jsonRPCRouter) Projects(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConnectionURLParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	s, ok := r.handler.registry.GetConnection(params.URL)
	if !ok {
		return reply(ctx, nil, &errors.ConnectionNotFoundError{URL: params.URL})
	}

	projects, err := s.GetProjects(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}
	result := make([]model.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		result = append(result, mapper.ProjectToSummary(p))
	}
	return reply(ctx, result, nil)
}

// Tree returns the full connections tree as flat rows.
func (r *jsonRPCRouter) Tree(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	items := r.handler.registry.TreeItems(ctx)
	return reply(ctx, mapper.TreeItemsToNodes(items), nil)
}

// RestartProject asks the server to restart a project in the requested mode.
// The outcome arrives later as a restart-result event.
func (r *jsonRPCRouter) RestartProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRestartProjectParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	s, _, err := r.lookupProject(ctx, params.URL, params.ProjectID)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, nil, s.RequestRestart(ctx, params.ProjectID, params.StartMode))
}

// BuildProject queues a build for a project.
func (r *jsonRPCRouter) BuildProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToBuildProjectParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	s, _, err := r.lookupProject(ctx, params.URL, params.ProjectID)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, nil, s.RequestBuild(ctx, params.ProjectID))
}

// lookupProject resolves a (url, projectID) pair to its session and project.
func (r *jsonRPCRouter) lookupProject(ctx context.Context, url, projectID string) (connection.Session, *entity.Project, error) {
	s, ok := r.handler.registry.GetConnection(url)
	if !ok {
		return nil, nil, &errors.ConnectionNotFoundError{URL: url}
	}
	p, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, &errors.ProjectNotFoundError{ID: projectID}
	}
	return s, p, nil
}
