package connection

import (
	"context"
	"testing"

	"github.com/codewind/cwsync/src/cwsync/entity"
	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	"github.com/codewind/cwsync/src/cwsync/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestOnConnect(t *testing.T) {
	s, pfeMock, _, notices := newTestSession(t)
	pfeMock.EXPECT().GetProjects(gomock.Any(), _testURL).Return(nil, nil)

	s.OnConnect()
	assert.True(t, s.IsConnected())

	// Flapping transports must not double-notify or double-fetch.
	s.OnConnect()
	s.pending.Wait()
	assert.EqualValues(t, 1, notices.Load())
}

func TestOnDisconnect(t *testing.T) {
	t.Run("before ever connecting is a no-op", func(t *testing.T) {
		s, _, _, notices := newTestSession(t)
		s.OnDisconnect()
		assert.False(t, s.IsConnected())
		assert.EqualValues(t, 0, notices.Load())
	})

	t.Run("after connecting", func(t *testing.T) {
		s, pfeMock, _, notices := newTestSession(t)
		pfeMock.EXPECT().GetProjects(gomock.Any(), _testURL).Return(nil, nil)

		s.OnConnect()
		s.pending.Wait()
		s.OnDisconnect()
		assert.False(t, s.IsConnected())
		s.OnDisconnect()
		assert.EqualValues(t, 2, notices.Load())
	})

	t.Run("not after closing", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		s.Close()
		s.OnConnect()
		assert.False(t, s.IsConnected())
	})
}

func TestOnEventProjectUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies status to the cached project", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		p := prime(s, "p1", "node-app")

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectStatusChanged,
			Payload: []byte(`{"projectID":"p1","appStatus":"started","buildStatus":"success","ports":{"exposedPort":"3000"}}`),
		})

		assert.Equal(t, entity.AppStarted, p.State().AppState)
		assert.Equal(t, entity.BuildSuccess, p.State().BuildState)
		assert.Equal(t, 3000, p.AppPort())
	})

	t.Run("unknown project triggers a refresh", func(t *testing.T) {
		s, pfeMock, _, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		pfeMock.EXPECT().GetProjects(gomock.Any(), _testURL).Return(nil, nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectChanged,
			Payload: []byte(`{"projectID":"p9","appStatus":"started"}`),
		})
	})

	t.Run("missing projectID is dropped", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		prime(s, "p1", "node-app")

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectStatusChanged,
			Payload: []byte(`{"appStatus":"started"}`),
		})
	})

	t.Run("undecodable payload is dropped", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		prime(s, "p1", "node-app")

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectStatusChanged,
			Payload: []byte(`"not an object"`),
		})
	})

	t.Run("unrecognized event name is ignored", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		s.OnEvent(ctx, &model.Event{Name: "newProjectAdded", Payload: []byte(`{}`)})
	})
}

func TestOnEventProjectClosed(t *testing.T) {
	ctx := context.Background()
	s, _, ideMock, _ := newTestSession(t)
	p := prime(s, "p1", "node-app")

	// Disabling a project clears its validation markers in the editor.
	ideMock.EXPECT().PublishDiagnostics(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
			assert.Empty(t, params.Diagnostics)
			return nil
		})

	s.OnEvent(ctx, &model.Event{
		Name:    model.EventProjectClosed,
		Payload: []byte(`{"projectID":"p1","state":"closed"}`),
	})

	assert.Equal(t, entity.AppDisabled, p.State().AppState)
	assert.False(t, p.State().IsEnabled())
}

func TestOnEventProjectDeletion(t *testing.T) {
	ctx := context.Background()
	s, pfeMock, _, notices := newTestSession(t)
	p := prime(s, "p1", "node-app")
	pfeMock.EXPECT().GetProjects(gomock.Any(), _testURL).Return(nil, nil)

	s.OnEvent(ctx, &model.Event{
		Name:    model.EventProjectDeletion,
		Payload: []byte(`{"projectID":"p1"}`),
	})

	missing, err := s.GetProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = p.WaitForState(0, entity.AppStarted)
	assert.Error(t, err)
	assert.Positive(t, notices.Load())
}

func TestOnEventRestartResult(t *testing.T) {
	ctx := context.Background()

	t.Run("failed restart surfaces the server error", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().ShowMessage(ctx, protocol.MessageTypeError, "Restarting node-app failed: container exited").Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p1","status":"failed","errorMsg":"container exited"}`),
		})
		s.pending.Wait()
	})

	t.Run("success without ports is a failure", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().ShowMessage(ctx, protocol.MessageTypeError, `Restarting node-app failed: status "success"`).Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p1","status":"success"}`),
		})
		s.pending.Wait()
	})

	t.Run("run restart reports completion once started", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		p := prime(s, "p1", "node-app")
		ideMock.EXPECT().ShowMessage(gomock.Any(), protocol.MessageTypeInfo, gomock.Any()).DoAndReturn(
			func(ctx context.Context, msgType protocol.MessageType, message string) error {
				assert.Contains(t, message, "Restarted node-app")
				return nil
			})

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p1","status":"success","startMode":"run","ports":{"exposedPort":"3000"}}`),
		})
		assert.Equal(t, entity.AppStarting, p.State().AppState)

		p.Update(&entity.StatusSnapshot{AppStatus: "started", StartMode: "run"})
		s.pending.Wait()
		assert.Equal(t, 3000, p.AppPort())
	})

	t.Run("debug restart attaches the debugger", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().AttachDebugger(gomock.Any(), &ideclient.AttachDebuggerParams{
			ProjectID:   "p1",
			ProjectName: "node-app",
			Host:        "codewind.example.com",
			DebugPort:   9229,
		}).Return(true, nil)
		ideMock.EXPECT().ShowMessage(gomock.Any(), protocol.MessageTypeInfo, "Debugging node-app").Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p1","status":"success","startMode":"debug","ports":{"exposedPort":"3000","exposedDebugPort":"9229"}}`),
		})
		s.pending.Wait()
	})

	t.Run("a refused debugger attach is reported", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().AttachDebugger(gomock.Any(), gomock.Any()).Return(false, nil)
		ideMock.EXPECT().ShowMessage(gomock.Any(), protocol.MessageTypeError, "Attaching the debugger to node-app failed").Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p1","status":"success","startMode":"debug","ports":{"exposedDebugPort":"9229"}}`),
		})
		s.pending.Wait()
	})

	t.Run("unknown project triggers a refresh", func(t *testing.T) {
		s, pfeMock, _, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		pfeMock.EXPECT().GetProjects(gomock.Any(), _testURL).Return(nil, nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectRestartResult,
			Payload: []byte(`{"projectID":"p9","status":"success","ports":{"exposedPort":"3000"}}`),
		})
	})
}

func TestOnEventContainerLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("prefixes with the project name", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().LogMessage(ctx, "[node-app] listening on 3000").Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventContainerLogs,
			Payload: []byte(`{"projectID":"p1","logs":"listening on 3000"}`),
		})
	})

	t.Run("falls back to the project ID", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		ideMock.EXPECT().LogMessage(ctx, "[p9] starting").Return(nil)

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventContainerLogs,
			Payload: []byte(`{"projectID":"p9","logs":"starting"}`),
		})
	})
}

func TestOnEventProjectValidated(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes diagnostics", func(t *testing.T) {
		s, _, ideMock, _ := newTestSession(t)
		prime(s, "p1", "node-app")
		ideMock.EXPECT().PublishDiagnostics(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
				require.Len(t, params.Diagnostics, 1)
				assert.Contains(t, params.Diagnostics[0].Message, "Missing required file")
				return nil
			})

		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectValidated,
			Payload: []byte(`{"projectID":"p1","status":"failed","validationResults":[{"severity":"error","filename":"Dockerfile","label":"Missing required file","details":"Dockerfile is required"}]}`),
		})
	})

	t.Run("unknown project is ignored", func(t *testing.T) {
		s, _, _, _ := newTestSession(t)
		s.OnEvent(ctx, &model.Event{
			Name:    model.EventProjectValidated,
			Payload: []byte(`{"projectID":"p9","validationResults":[]}`),
		})
	})
}

// prime inserts a cached project so event handlers find it without a fetch.
func prime(s *session, id, name string) *entity.Project {
	p := entity.NewProject(id, name, s.notifyChanged)
	p.Type = entity.ProjectTypeNode
	p.LocalPath = "/workspace/" + name
	s.mu.Lock()
	s.projects[id] = p
	s.needsRefresh = false
	s.mu.Unlock()
	return p
}
