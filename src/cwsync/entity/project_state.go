package entity

import (
	"fmt"
	"strings"
)

// AppState is the lifecycle state of a project's application container.
type AppState string

// Application states reported by the server, plus Unknown for anything else.
const (
	AppStarted       AppState = "Started"
	AppStarting      AppState = "Starting"
	AppStopping      AppState = "Stopping"
	AppStopped       AppState = "Stopped"
	AppDebugging     AppState = "Debugging"
	AppDebugStarting AppState = "Debug Starting"
	AppDisabled      AppState = "Disabled"
	AppUnknown       AppState = "Unknown"
)

// BuildState is the state of a project's most recent build.
type BuildState string

// Build states reported by the server.
const (
	BuildSuccess    BuildState = "Build Succeeded"
	BuildInProgress BuildState = "Building"
	BuildFailed     BuildState = "Build Failed"
	BuildQueued     BuildState = "Build Queued"
	BuildUnknown    BuildState = "Unknown"
)

// Raw status strings on the wire. The server sends these lower-cased.
const (
	_appStatusStarted  = "started"
	_appStatusStarting = "starting"
	_appStatusStopping = "stopping"
	_appStatusStopped  = "stopped"

	_buildStatusSuccess    = "success"
	_buildStatusInProgress = "inprogress"
	_buildStatusQueued     = "queued"
	_buildStatusFailed     = "failed"

	_projectStateClosed = "closed"

	_startModeDebug       = "debug"
	_startModeDebugNoInit = "debugnoinit"
)

// Ports carries the exposed port fields of a status payload.
// Values are pre-parsed to ints by the mapper; 0 means absent.
type Ports struct {
	AppPort   int
	DebugPort int
}

// StatusSnapshot is the normalized form of a single project status payload.
// A nil snapshot means "no information yet".
type StatusSnapshot struct {
	AppStatus   string
	BuildStatus string
	BuildDetail string
	State       string
	StartMode   string
	Ports       *Ports
	ContainerID string
}

// ProjectState classifies a raw status payload into application and build
// states. It is a value; compare with ==.
type ProjectState struct {
	AppState    AppState
	BuildState  BuildState
	BuildDetail string
}

// NewProjectState builds a ProjectState from a raw snapshot. Fields the
// snapshot fails to resolve inherit the fallback's value, so an incomplete
// payload never erases known state. A nil snapshot resets to fully Unknown
// and the fallback is not consulted.
func NewProjectState(snap *StatusSnapshot, fallback *ProjectState) ProjectState {
	if snap == nil {
		return ProjectState{AppState: AppUnknown, BuildState: BuildUnknown}
	}

	s := ProjectState{
		AppState:    appStateOf(snap),
		BuildState:  buildStateOf(snap.BuildStatus),
		BuildDetail: snap.BuildDetail,
	}

	if fallback != nil {
		if s.AppState == AppUnknown {
			s.AppState = fallback.AppState
		}
		if s.BuildState == BuildUnknown {
			s.BuildState = fallback.BuildState
		}
		if s.BuildDetail == "" {
			s.BuildDetail = fallback.BuildDetail
		}
	}
	return s
}

func appStateOf(snap *StatusSnapshot) AppState {
	if snap.State == _projectStateClosed {
		return AppDisabled
	}
	debug := isDebugMode(snap.StartMode)
	switch strings.ToLower(snap.AppStatus) {
	case _appStatusStarted:
		if debug {
			return AppDebugging
		}
		return AppStarted
	case _appStatusStarting:
		if debug {
			return AppDebugStarting
		}
		return AppStarting
	case _appStatusStopping:
		return AppStopping
	case _appStatusStopped:
		return AppStopped
	default:
		return AppUnknown
	}
}

// buildStateOf maps a raw build status. A missing build status is normal for
// disabled projects, so it resolves to Unknown rather than an error.
func buildStateOf(raw string) BuildState {
	switch strings.ToLower(raw) {
	case _buildStatusSuccess:
		return BuildSuccess
	case _buildStatusInProgress:
		return BuildInProgress
	case _buildStatusQueued:
		return BuildQueued
	case _buildStatusFailed:
		return BuildFailed
	default:
		return BuildUnknown
	}
}

func isDebugMode(startMode string) bool {
	m := strings.ToLower(startMode)
	return m == _startModeDebug || m == _startModeDebugNoInit
}

// IsEnabled reports whether the project is open on the server.
func (s ProjectState) IsEnabled() bool {
	return s.AppState != AppDisabled
}

// IsStarted reports whether the application is running, in either mode.
func (s ProjectState) IsStarted() bool {
	return s.AppState == AppStarted || s.AppState == AppDebugging
}

// IsBuilding reports whether a build is currently in progress.
func (s ProjectState) IsBuilding() bool {
	return s.BuildState == BuildInProgress
}

// String implements fmt.Stringer.
func (s ProjectState) String() string {
	if s.BuildDetail != "" {
		return fmt.Sprintf("%s [%s - %s]", s.AppState, s.BuildState, s.BuildDetail)
	}
	return fmt.Sprintf("%s [%s]", s.AppState, s.BuildState)
}
