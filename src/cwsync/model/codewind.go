// Package model contains the wire and storage layer shapes for cwsync.
package model

import "encoding/json"

// ProjectDescriptor is one element of the REST project-list response
// (GET {base}/api/v1/projects). Field names must match the server exactly.
type ProjectDescriptor struct {
	ProjectID           string   `json:"projectID"`
	Name                string   `json:"name"`
	BuildType           string   `json:"buildType"`
	Language            string   `json:"language"`
	LocOnDisk           string   `json:"locOnDisk"`
	ContextRoot         string   `json:"contextroot,omitempty"`
	Ports               *PortMap `json:"ports,omitempty"`
	AppStatus           string   `json:"appStatus,omitempty"`
	BuildStatus         string   `json:"buildStatus,omitempty"`
	DetailedBuildStatus string   `json:"detailedBuildStatus,omitempty"`
	State               string   `json:"state,omitempty"`
	StartMode           string   `json:"startMode,omitempty"`
	ContainerID         string   `json:"containerId,omitempty"`
}

// PortMap carries the exposed ports of a project. The server sends these as
// strings.
type PortMap struct {
	ExposedPort       string `json:"exposedPort,omitempty"`
	InternalPort      string `json:"internalPort,omitempty"`
	ExposedDebugPort  string `json:"exposedDebugPort,omitempty"`
	InternalDebugPort string `json:"internalDebugPort,omitempty"`
}

// Environment is the REST environment response (GET {base}/api/v1/environment).
type Environment struct {
	MicroclimateVersion string `json:"microclimate_version"`
	WorkspaceLocation   string `json:"workspace_location"`
	SocketNamespace     string `json:"socket_namespace,omitempty"`
	UserString          string `json:"user_string,omitempty"`
	RunningOnICP        bool   `json:"running_on_icp,omitempty"`
}

// Event is one message-type-tagged push message from the server.
type Event struct {
	Name    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Push event names.
const (
	EventProjectChanged       = "projectChanged"
	EventProjectStatusChanged = "projectStatusChanged"
	EventProjectClosed        = "projectClosed"
	EventProjectDeletion      = "projectDeletion"
	EventProjectRestartResult = "projectRestartResult"
	EventContainerLogs        = "container-logs"
	EventProjectValidated     = "projectValidated"
)

// ProjectUpdate is the payload of projectChanged, projectStatusChanged,
// projectClosed and projectDeletion events.
type ProjectUpdate struct {
	ProjectID           string   `json:"projectID"`
	AppStatus           string   `json:"appStatus,omitempty"`
	BuildStatus         string   `json:"buildStatus,omitempty"`
	DetailedBuildStatus string   `json:"detailedBuildStatus,omitempty"`
	State               string   `json:"state,omitempty"`
	StartMode           string   `json:"startMode,omitempty"`
	Ports               *PortMap `json:"ports,omitempty"`
	ContainerID         string   `json:"containerId,omitempty"`
}

// RestartResult is the payload of a projectRestartResult event.
type RestartResult struct {
	ProjectID string   `json:"projectID"`
	Status    string   `json:"status"`
	StartMode string   `json:"startMode,omitempty"`
	Ports     *PortMap `json:"ports,omitempty"`
	ErrorMsg  string   `json:"errorMsg,omitempty"`
}

// RestartSuccess is the Status value reporting a successful restart.
const RestartSuccess = "success"

// ContainerLogs is the payload of a container-logs event.
type ContainerLogs struct {
	ProjectID string `json:"projectID"`
	Logs      string `json:"logs"`
}

// ValidationResult is the payload of a projectValidated event.
type ValidationResult struct {
	ProjectID string          `json:"projectID"`
	Status    string          `json:"status,omitempty"`
	Results   json.RawMessage `json:"validationResults,omitempty"`
}

// ValidationProblem is one entry of a validation payload.
type ValidationProblem struct {
	Severity string `json:"severity,omitempty"`
	Filename string `json:"filename,omitempty"`
	Filepath string `json:"filepath,omitempty"`
	Label    string `json:"label,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ConnectionDescriptor is the persisted form of a connection, stored in the
// user's settings file and reloaded at startup.
type ConnectionDescriptor struct {
	URL             string `yaml:"url" json:"url"`
	Version         string `yaml:"version" json:"version"`
	WorkspacePath   string `yaml:"workspacePath" json:"workspacePath"`
	KubeNamespace   string `yaml:"kubeNamespace,omitempty" json:"kubeNamespace,omitempty"`
	SocketNamespace string `yaml:"socketNamespace,omitempty" json:"socketNamespace,omitempty"`
	User            string `yaml:"user,omitempty" json:"user,omitempty"`
}
