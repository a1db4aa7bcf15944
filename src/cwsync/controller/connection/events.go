package connection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codewind/cwsync/src/cwsync/entity"
	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.lsp.dev/protocol"
)

// OnConnect and OnDisconnect are the event channel's transport edges. Both
// are idempotent so a flapping transport cannot produce duplicate change
// notifications.
func (s *session) OnConnect() {
	s.mu.Lock()
	if s.connected || s.closed {
		s.mu.Unlock()
		return
	}
	s.connected = true
	s.needsRefresh = true
	s.mu.Unlock()

	s.logger.Infof("connected to %s", s.info.URL)
	s.notifyChanged()

	// Push events may have been missed while disconnected; repopulate
	// eagerly off the reader goroutine.
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.ForceRefresh(context.Background())
	}()
}

func (s *session) OnDisconnect() {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.connected = false
	s.mu.Unlock()

	s.logger.Infof("lost connection to %s", s.info.URL)
	s.notifyChanged()
}

// OnEvent routes one decoded push event. Reconciliation errors are logged
// rather than propagated; no caller is waiting on them.
func (s *session) OnEvent(ctx context.Context, event *model.Event) {
	switch event.Name {
	case model.EventProjectChanged, model.EventProjectStatusChanged:
		s.onProjectUpdate(ctx, event.Payload)
	case model.EventProjectClosed:
		s.onProjectClosed(ctx, event.Payload)
	case model.EventProjectDeletion:
		s.onProjectDeletion(ctx, event.Payload)
	case model.EventProjectRestartResult:
		s.onRestartResult(ctx, event.Payload)
	case model.EventContainerLogs:
		s.onContainerLogs(ctx, event.Payload)
	case model.EventProjectValidated:
		s.onProjectValidated(ctx, event.Payload)
	default:
		s.logger.Debugf("ignoring unrecognized event %q from %s", event.Name, s.info.URL)
	}
}

func (s *session) onProjectUpdate(ctx context.Context, payload json.RawMessage) {
	var update model.ProjectUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		s.logger.Errorf("undecodable project update from %s: %v", s.info.URL, err)
		return
	}
	if update.ProjectID == "" {
		s.logger.Errorf("project update from %s carries no projectID", s.info.URL)
		return
	}

	p := s.lookup(update.ProjectID)
	if p == nil {
		// An event for an uncached project usually means a new project
		// appeared; a full re-fetch picks it up.
		s.logger.Debugf("update for unknown project %s, refreshing %s", update.ProjectID, s.info.URL)
		s.ForceRefresh(ctx)
		return
	}

	snapshot, badPorts := mapper.UpdateToSnapshot(&update)
	for _, raw := range badPorts {
		s.logger.Errorf("dropping invalid port %q for project %s", raw, p.Name)
	}
	p.Update(snapshot)
}

// onProjectClosed clears the project's validation diagnostics before folding
// into the regular update path: a disabled project should not keep stale
// markers in the editor.
func (s *session) onProjectClosed(ctx context.Context, payload json.RawMessage) {
	var update model.ProjectUpdate
	if err := json.Unmarshal(payload, &update); err == nil && update.ProjectID != "" {
		if p := s.lookup(update.ProjectID); p != nil && p.LocalPath != "" {
			err := s.ide.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
				URI:         mapper.ProjectURI(p),
				Diagnostics: []protocol.Diagnostic{},
			})
			if err != nil {
				s.logger.Errorf("clearing diagnostics for %s: %v", update.ProjectID, err)
			}
		}
	}
	s.onProjectUpdate(ctx, payload)
}

func (s *session) onProjectDeletion(ctx context.Context, payload json.RawMessage) {
	var update model.ProjectUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		s.logger.Errorf("undecodable deletion event from %s: %v", s.info.URL, err)
		return
	}

	s.mu.Lock()
	p := s.projects[update.ProjectID]
	delete(s.projects, update.ProjectID)
	s.mu.Unlock()

	if p != nil {
		p.MarkDeleted()
		s.logger.Infof("project %s was deleted on %s", p.Name, s.info.URL)
	}
	s.ForceRefresh(ctx)
	s.notifyChanged()
}

func (s *session) onRestartResult(ctx context.Context, payload json.RawMessage) {
	var result model.RestartResult
	if err := json.Unmarshal(payload, &result); err != nil {
		s.logger.Errorf("undecodable restart result from %s: %v", s.info.URL, err)
		return
	}

	p := s.lookup(result.ProjectID)
	if p == nil {
		s.logger.Debugf("restart result for unknown project %s", result.ProjectID)
		s.ForceRefresh(ctx)
		return
	}

	if result.Status != model.RestartSuccess || result.Ports == nil {
		detail := result.ErrorMsg
		if detail == "" {
			detail = fmt.Sprintf("status %q", result.Status)
		}
		s.showMessage(ctx, protocol.MessageTypeError,
			fmt.Sprintf("Restarting %s failed: %s", p.Name, detail))
		return
	}

	snapshot, badPorts := mapper.RestartToSnapshot(&result)
	for _, raw := range badPorts {
		s.logger.Errorf("dropping invalid port %q for project %s", raw, p.Name)
	}
	p.Update(snapshot)

	// Completion reporting blocks on the project coming back up, so it runs
	// off the reader goroutine.
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.finishRestart(context.Background(), p, result.StartMode)
	}()
}

// finishRestart waits for the restarted application and reports the outcome:
// a debugger attach for debug restarts, a completion message otherwise.
func (s *session) finishRestart(ctx context.Context, p *entity.Project, startMode string) {
	if entity.NewProjectState(&entity.StatusSnapshot{AppStatus: "started", StartMode: startMode}, nil).AppState == entity.AppDebugging {
		attached, err := s.ide.AttachDebugger(ctx, &ideclient.AttachDebuggerParams{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Host:        s.info.Host,
			DebugPort:   p.DebugPort(),
		})
		if err != nil || !attached {
			s.logger.Errorf("attaching debugger to %s: attached=%v err=%v", p.Name, attached, err)
			s.showMessage(ctx, protocol.MessageTypeError,
				fmt.Sprintf("Attaching the debugger to %s failed", p.Name))
			return
		}
		s.showMessage(ctx, protocol.MessageTypeInfo,
			fmt.Sprintf("Debugging %s", p.Name))
		return
	}

	state, err := p.WaitForState(_restartTimeout, entity.AppStarted)
	if err != nil {
		s.showMessage(ctx, protocol.MessageTypeError,
			fmt.Sprintf("Restarting %s did not complete: %v", p.Name, err))
		return
	}
	s.showMessage(ctx, protocol.MessageTypeInfo,
		fmt.Sprintf("Restarted %s into the %s state", p.Name, state))
}

func (s *session) onContainerLogs(ctx context.Context, payload json.RawMessage) {
	var logs model.ContainerLogs
	if err := json.Unmarshal(payload, &logs); err != nil {
		s.logger.Errorf("undecodable container logs from %s: %v", s.info.URL, err)
		return
	}

	name := logs.ProjectID
	if p := s.lookup(logs.ProjectID); p != nil {
		name = p.Name
	}
	if err := s.ide.LogMessage(ctx, fmt.Sprintf("[%s] %s", name, logs.Logs)); err != nil {
		s.logger.Errorf("forwarding container logs for %s: %v", name, err)
	}
}

func (s *session) onProjectValidated(ctx context.Context, payload json.RawMessage) {
	var result model.ValidationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		s.logger.Errorf("undecodable validation result from %s: %v", s.info.URL, err)
		return
	}

	p := s.lookup(result.ProjectID)
	if p == nil {
		s.logger.Debugf("validation result for unknown project %s", result.ProjectID)
		return
	}

	params, err := mapper.ValidationToDiagnostics(p, &result)
	if err != nil {
		s.logger.Errorf("mapping validation result for %s: %v", p.Name, err)
		return
	}
	if err := s.ide.PublishDiagnostics(ctx, params); err != nil {
		s.logger.Errorf("publishing validation result for %s: %v", p.Name, err)
	}
}

// showMessage surfaces exactly one user-visible notification; failures to
// deliver it are logged, never propagated.
func (s *session) showMessage(ctx context.Context, msgType protocol.MessageType, message string) {
	if err := s.ide.ShowMessage(ctx, msgType, message); err != nil {
		s.logger.Errorf("showing message %q: %v", message, err)
	}
}
