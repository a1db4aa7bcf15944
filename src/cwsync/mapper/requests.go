package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.lsp.dev/jsonrpc2"
)

// RequestToNewConnectionParams maps the parameters from a jsonrpc2.Request into model.NewConnectionParams.
func RequestToNewConnectionParams(req jsonrpc2.Request) (*model.NewConnectionParams, error) {
	params := model.NewConnectionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToConnectionURLParams maps the parameters from a jsonrpc2.Request into model.ConnectionURLParams.
func RequestToConnectionURLParams(req jsonrpc2.Request) (*model.ConnectionURLParams, error) {
	params := model.ConnectionURLParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToRestartProjectParams maps the parameters from a jsonrpc2.Request into model.RestartProjectParams.
func RequestToRestartProjectParams(req jsonrpc2.Request) (*model.RestartProjectParams, error) {
	params := model.RestartProjectParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToBuildProjectParams maps the parameters from a jsonrpc2.Request into model.BuildProjectParams.
func RequestToBuildProjectParams(req jsonrpc2.Request) (*model.BuildProjectParams, error) {
	params := model.BuildProjectParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// ConnectionToSummary renders one connection for editor consumption.
func ConnectionToSummary(info entity.ConnectionInfo, connected bool) model.ConnectionSummary {
	return model.ConnectionSummary{
		URL:           info.URL,
		Version:       info.Version,
		WorkspacePath: info.WorkspacePath,
		Connected:     connected,
	}
}

// ProjectToSummary renders one project for editor consumption.
func ProjectToSummary(p *entity.Project) model.ProjectSummary {
	state := p.State()
	return model.ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Language:    p.Language,
		LocalPath:   p.LocalPath,
		AppState:    string(state.AppState),
		BuildState:  string(state.BuildState),
		BuildDetail: state.BuildDetail,
		AppPort:     p.AppPort(),
		DebugPort:   p.DebugPort(),
		Enabled:     state.IsEnabled(),
	}
}

// TreeItemsToNodes renders tree items into the flat rows editors draw.
func TreeItemsToNodes(items []entity.TreeItem) []model.TreeNode {
	nodes := make([]model.TreeNode, 0, len(items))
	var currentURL string
	for _, item := range items {
		node := model.TreeNode{
			Kind:  string(item.Kind),
			Label: item.Label(),
		}
		switch item.Kind {
		case entity.TreeItemConnection:
			currentURL = item.Connection.URL
			node.URL = currentURL
		case entity.TreeItemProject:
			node.URL = currentURL
			node.ProjectID = item.Project.ID
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
