// Package factory provides user-defined factories for commonly built values.
package factory

import (
	"fmt"

	"github.com/codewind/cwsync/src/cwsync/model"
	"github.com/gofrs/uuid"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// ProjectDescriptor is a factory for a project-list element with the given
// numeric suffix, in the started/build-succeeded state.
func ProjectDescriptor(id int) *model.ProjectDescriptor {
	return &model.ProjectDescriptor{
		ProjectID:   fmt.Sprintf("project-%v", id),
		Name:        fmt.Sprintf("test-project-%v", id),
		BuildType:   "nodejs",
		Language:    "javascript",
		LocOnDisk:   fmt.Sprintf("/home/user/ws/test-project-%v", id),
		ContextRoot: "/",
		AppStatus:   "started",
		BuildStatus: "success",
	}
}

// ConnectionDescriptor is a factory for a persisted connection descriptor.
func ConnectionDescriptor(port int) model.ConnectionDescriptor {
	return model.ConnectionDescriptor{
		URL:           fmt.Sprintf("http://localhost:%v", port),
		Version:       "19.03",
		WorkspacePath: "/home/user/codewind-workspace",
	}
}

// Environment is a factory for an environment response that passes
// validation.
func Environment() *model.Environment {
	return &model.Environment{
		MicroclimateVersion: "19.03",
		WorkspaceLocation:   "/home/user/codewind-workspace",
		SocketNamespace:     "/default",
	}
}
