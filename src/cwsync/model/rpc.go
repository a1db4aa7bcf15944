package model

// Parameter and result types for the daemon's editor-facing JSON-RPC
// methods. Editors hold no entity state; they render these summaries.

// NewConnectionParams names the server an editor wants to connect to.
type NewConnectionParams struct {
	URL string `json:"url"`
}

// ConnectionURLParams identifies an existing connection by its URL.
type ConnectionURLParams struct {
	URL string `json:"url"`
}

// RestartProjectParams asks for a project restart in the given mode.
type RestartProjectParams struct {
	URL       string `json:"url"`
	ProjectID string `json:"projectID"`
	StartMode string `json:"startMode"`
}

// BuildProjectParams queues a build for a project.
type BuildProjectParams struct {
	URL       string `json:"url"`
	ProjectID string `json:"projectID"`
}

// ConnectionSummary is the editor-facing view of one connection.
type ConnectionSummary struct {
	URL           string `json:"url"`
	Version       string `json:"version"`
	WorkspacePath string `json:"workspacePath"`
	Connected     bool   `json:"connected"`
}

// ProjectSummary is the editor-facing view of one project.
type ProjectSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Language    string `json:"language"`
	LocalPath   string `json:"localPath"`
	AppState    string `json:"appState"`
	BuildState  string `json:"buildState"`
	BuildDetail string `json:"buildDetail,omitempty"`
	AppPort     int    `json:"appPort,omitempty"`
	DebugPort   int    `json:"debugPort,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// TreeNode is one rendered row of the connections tree.
type TreeNode struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	ProjectID string `json:"projectID,omitempty"`
}
