package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProjectState(t *testing.T) {
	tests := []struct {
		name       string
		snap       *StatusSnapshot
		fallback   *ProjectState
		wantApp    AppState
		wantBuild  BuildState
		wantDetail string
	}{
		{
			name:      "nil snapshot resets to unknown",
			snap:      nil,
			fallback:  &ProjectState{AppState: AppStarted, BuildState: BuildSuccess, BuildDetail: "done"},
			wantApp:   AppUnknown,
			wantBuild: BuildUnknown,
		},
		{
			name:      "started run mode",
			snap:      &StatusSnapshot{AppStatus: "started", BuildStatus: "success", StartMode: "run"},
			wantApp:   AppStarted,
			wantBuild: BuildSuccess,
		},
		{
			name:      "started debug mode",
			snap:      &StatusSnapshot{AppStatus: "started", StartMode: "debug"},
			wantApp:   AppDebugging,
			wantBuild: BuildUnknown,
		},
		{
			name:      "starting debugnoinit mode",
			snap:      &StatusSnapshot{AppStatus: "starting", StartMode: "debugNoInit"},
			wantApp:   AppDebugStarting,
			wantBuild: BuildUnknown,
		},
		{
			name:      "closed state wins over app status",
			snap:      &StatusSnapshot{AppStatus: "started", State: "closed"},
			wantApp:   AppDisabled,
			wantBuild: BuildUnknown,
		},
		{
			name:      "status strings are case insensitive",
			snap:      &StatusSnapshot{AppStatus: "STOPPING", BuildStatus: "inProgress"},
			wantApp:   AppStopping,
			wantBuild: BuildInProgress,
		},
		{
			name:      "unrecognized statuses resolve to unknown",
			snap:      &StatusSnapshot{AppStatus: "levitating", BuildStatus: "exploded"},
			wantApp:   AppUnknown,
			wantBuild: BuildUnknown,
		},
		{
			name:       "unresolved fields inherit the fallback",
			snap:       &StatusSnapshot{BuildStatus: "failed"},
			fallback:   &ProjectState{AppState: AppStarted, BuildState: BuildSuccess, BuildDetail: "last build ok"},
			wantApp:    AppStarted,
			wantBuild:  BuildFailed,
			wantDetail: "last build ok",
		},
		{
			name:       "resolved fields ignore the fallback",
			snap:       &StatusSnapshot{AppStatus: "stopped", BuildStatus: "queued", BuildDetail: "waiting"},
			fallback:   &ProjectState{AppState: AppStarted, BuildState: BuildSuccess, BuildDetail: "stale"},
			wantApp:    AppStopped,
			wantBuild:  BuildQueued,
			wantDetail: "waiting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProjectState(tt.snap, tt.fallback)
			assert.Equal(t, tt.wantApp, got.AppState)
			assert.Equal(t, tt.wantBuild, got.BuildState)
			assert.Equal(t, tt.wantDetail, got.BuildDetail)
		})
	}
}

func TestProjectStatePredicates(t *testing.T) {
	t.Run("IsEnabled", func(t *testing.T) {
		assert.True(t, ProjectState{AppState: AppStopped}.IsEnabled())
		assert.True(t, ProjectState{AppState: AppUnknown}.IsEnabled())
		assert.False(t, ProjectState{AppState: AppDisabled}.IsEnabled())
	})

	t.Run("IsStarted", func(t *testing.T) {
		assert.True(t, ProjectState{AppState: AppStarted}.IsStarted())
		assert.True(t, ProjectState{AppState: AppDebugging}.IsStarted())
		assert.False(t, ProjectState{AppState: AppStarting}.IsStarted())
		assert.False(t, ProjectState{AppState: AppDebugStarting}.IsStarted())
	})

	t.Run("IsBuilding", func(t *testing.T) {
		assert.True(t, ProjectState{BuildState: BuildInProgress}.IsBuilding())
		assert.False(t, ProjectState{BuildState: BuildQueued}.IsBuilding())
	})
}

func TestProjectStateString(t *testing.T) {
	s := ProjectState{AppState: AppStarted, BuildState: BuildSuccess}
	assert.Equal(t, "Started [Build Succeeded]", s.String())

	s.BuildDetail = "compiling"
	assert.Equal(t, "Started [Build Succeeded - compiling]", s.String())
}

func TestProjectStateEquality(t *testing.T) {
	a := NewProjectState(&StatusSnapshot{AppStatus: "started", BuildStatus: "success"}, nil)
	b := NewProjectState(&StatusSnapshot{AppStatus: "started", BuildStatus: "success"}, nil)
	assert.True(t, a == b)
}
