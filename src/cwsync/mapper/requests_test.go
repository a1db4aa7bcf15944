package mapper

import (
	"testing"

	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/stretchr/testify/assert"
)

func TestConnectionToSummary(t *testing.T) {
	info := entity.ConnectionInfo{
		URL:           "http://localhost:9090",
		Version:       "19.03",
		WorkspacePath: "/workspace",
	}
	summary := ConnectionToSummary(info, true)
	assert.Equal(t, "http://localhost:9090", summary.URL)
	assert.Equal(t, "19.03", summary.Version)
	assert.Equal(t, "/workspace", summary.WorkspacePath)
	assert.True(t, summary.Connected)
}

func TestProjectToSummary(t *testing.T) {
	p := entity.NewProject("id1", "myproject", nil)
	p.Type = entity.ProjectTypeSpring
	p.Language = "java"
	p.LocalPath = "/workspace/myproject"
	p.Update(&entity.StatusSnapshot{
		AppStatus:   "started",
		BuildStatus: "success",
		Ports:       &entity.Ports{AppPort: 9080},
	})

	summary := ProjectToSummary(p)
	assert.Equal(t, "id1", summary.ID)
	assert.Equal(t, "myproject", summary.Name)
	assert.Equal(t, "spring", summary.Type)
	assert.Equal(t, "java", summary.Language)
	assert.Equal(t, string(entity.AppStarted), summary.AppState)
	assert.Equal(t, string(entity.BuildSuccess), summary.BuildState)
	assert.Equal(t, 9080, summary.AppPort)
	assert.True(t, summary.Enabled)
}

func TestTreeItemsToNodes(t *testing.T) {
	info := &entity.ConnectionInfo{URL: "http://localhost:9090"}
	p := entity.NewProject("id1", "myproject", nil)

	nodes := TreeItemsToNodes([]entity.TreeItem{
		{Kind: entity.TreeItemConnection, Connection: info},
		{Kind: entity.TreeItemProject, Project: p},
	})

	assert.Len(t, nodes, 2)
	assert.Equal(t, "connection", nodes[0].Kind)
	assert.Equal(t, "http://localhost:9090", nodes[0].URL)
	assert.Equal(t, "project", nodes[1].Kind)
	assert.Equal(t, "http://localhost:9090", nodes[1].URL)
	assert.Equal(t, "id1", nodes[1].ProjectID)
}
