// Package entity contains the domain logic for the cwsync daemon.
package entity

import (
	"sync"
	"time"

	"github.com/codewind/cwsync/src/cwsync/internal/errors"
)

// ProjectType is the technology a project is built on.
type ProjectType string

// Project types reported by the server as buildType.
const (
	ProjectTypeLiberty ProjectType = "liberty"
	ProjectTypeSpring  ProjectType = "spring"
	ProjectTypeNode    ProjectType = "nodejs"
	ProjectTypeSwift   ProjectType = "swift"
	ProjectTypeDocker  ProjectType = "docker"
	ProjectTypeUnknown ProjectType = "unknown"
)

// CanDebug reports whether this project type supports a debugger attach.
func (t ProjectType) CanDebug() bool {
	switch t {
	case ProjectTypeLiberty, ProjectTypeSpring, ProjectTypeNode:
		return true
	default:
		return false
	}
}

// ProjectTypeOf maps a raw buildType to a ProjectType.
func ProjectTypeOf(buildType string) ProjectType {
	switch ProjectType(buildType) {
	case ProjectTypeLiberty, ProjectTypeSpring, ProjectTypeNode, ProjectTypeSwift, ProjectTypeDocker:
		return ProjectType(buildType)
	default:
		return ProjectTypeUnknown
	}
}

// GoodPort reports whether port is usable as an exposed application or debug
// port: an integer strictly between 1024 and 65536.
func GoodPort(port int) bool {
	return port > 1024 && port < 65536
}

type waitOutcome struct {
	state AppState
	err   error
}

// stateWaiter is one outstanding WaitForState call. Each waiter owns its own
// timer, so concurrent callers can each await their own target states.
type stateWaiter struct {
	states []AppState
	result chan waitOutcome
	timer  *time.Timer
	done   bool
}

// Project mirrors one project on a remote server. It is created from a
// project-list fetch and mutated in place by every subsequent status event.
type Project struct {
	ID          string
	Name        string
	Type        ProjectType
	Language    string
	LocalPath   string
	ContextRoot string

	mu          sync.Mutex
	state       ProjectState
	appPort     int
	debugPort   int
	containerID string
	waiters     []*stateWaiter
	deleted     bool

	// notify signals the owning session's change fan-out. Fired after a real
	// state replacement, never on a no-op update.
	notify func()
}

// NewProject returns a Project in the fully Unknown state. notify may be nil.
func NewProject(id, name string, notify func()) *Project {
	return &Project{
		ID:     id,
		Name:   name,
		state:  NewProjectState(nil, nil),
		notify: notify,
	}
}

// State returns the current state value.
func (p *Project) State() ProjectState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// AppPort returns the exposed application port, or 0 if none is known.
func (p *Project) AppPort() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.appPort
}

// DebugPort returns the exposed debug port, or 0 if none is known.
func (p *Project) DebugPort() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.debugPort
}

// ContainerID returns the last reported container ID, which may be empty.
func (p *Project) ContainerID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.containerID
}

// Update applies a status snapshot. The new state is constructed with the
// current state as fallback; if it equals the current state by value the call
// is a no-op and no notification fires. On a real replacement, ports and
// container ID are refreshed and any waiters for the new app state resolve.
// Reports whether the state was replaced.
func (p *Project) Update(snap *StatusSnapshot) bool {
	p.mu.Lock()
	next := NewProjectState(snap, &p.state)
	if next == p.state {
		p.mu.Unlock()
		return false
	}
	p.state = next

	if snap != nil {
		if snap.ContainerID != "" {
			p.containerID = snap.ContainerID
		}
		if snap.Ports != nil {
			if snap.Ports.AppPort != 0 && GoodPort(snap.Ports.AppPort) {
				p.appPort = snap.Ports.AppPort
			}
			if snap.Ports.DebugPort != 0 && GoodPort(snap.Ports.DebugPort) {
				p.debugPort = snap.Ports.DebugPort
			}
		}
	}

	resolved := p.takeWaitersLocked(next.AppState)
	notify := p.notify
	p.mu.Unlock()

	for _, w := range resolved {
		w.result <- waitOutcome{state: next.AppState}
	}
	if notify != nil {
		notify()
	}
	return true
}

// SetAppPort sets the application port, rejecting values outside the usable
// range. Reports whether the value was accepted; a rejected value leaves the
// prior port unchanged.
func (p *Project) SetAppPort(port int) bool {
	if !GoodPort(port) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appPort = port
	return true
}

// SetDebugPort sets the debug port with the same validation as SetAppPort.
func (p *Project) SetDebugPort(port int) bool {
	if !GoodPort(port) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.debugPort = port
	return true
}

// WaitForState blocks until an update places the project into one of the
// acceptable states, and returns that state. If the project is already in an
// acceptable state it returns immediately without arming a timer. If timeout
// elapses first, a StateTimeoutError is returned and a later qualifying
// update will not resurrect the call.
func (p *Project) WaitForState(timeout time.Duration, states ...AppState) (AppState, error) {
	p.mu.Lock()
	if p.deleted {
		p.mu.Unlock()
		return AppUnknown, errors.ErrProjectDeleted
	}
	if stateIn(p.state.AppState, states) {
		cur := p.state.AppState
		p.mu.Unlock()
		return cur, nil
	}

	w := &stateWaiter{
		states: states,
		result: make(chan waitOutcome, 1),
	}
	w.timer = time.AfterFunc(timeout, func() {
		p.expireWaiter(w, timeout)
	})
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()

	out := <-w.result
	return out.state, out.err
}

// PendingWaiters returns the number of outstanding WaitForState calls.
func (p *Project) PendingWaiters() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters)
}

// MarkDeleted releases the project's resources after a deletion event. All
// outstanding waiters fail immediately and future waits are refused.
func (p *Project) MarkDeleted() {
	p.mu.Lock()
	p.deleted = true
	rejected := p.waiters
	p.waiters = nil
	for _, w := range rejected {
		w.done = true
		w.timer.Stop()
	}
	p.mu.Unlock()

	for _, w := range rejected {
		w.result <- waitOutcome{err: errors.ErrProjectDeleted}
	}
}

// takeWaitersLocked removes and returns every waiter satisfied by state.
// Caller must hold p.mu.
func (p *Project) takeWaitersLocked(state AppState) []*stateWaiter {
	var resolved []*stateWaiter
	remaining := p.waiters[:0]
	for _, w := range p.waiters {
		if stateIn(state, w.states) {
			w.done = true
			w.timer.Stop()
			resolved = append(resolved, w)
			continue
		}
		remaining = append(remaining, w)
	}
	p.waiters = remaining
	return resolved
}

func (p *Project) expireWaiter(w *stateWaiter, timeout time.Duration) {
	p.mu.Lock()
	if w.done {
		p.mu.Unlock()
		return
	}
	w.done = true
	remaining := p.waiters[:0]
	for _, other := range p.waiters {
		if other != w {
			remaining = append(remaining, other)
		}
	}
	p.waiters = remaining
	p.mu.Unlock()

	states := make([]string, len(w.states))
	for i, s := range w.states {
		states[i] = string(s)
	}
	w.result <- waitOutcome{err: &errors.StateTimeoutError{
		Project: p.Name,
		States:  states,
		Elapsed: timeout,
	}}
}

func stateIn(state AppState, states []AppState) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}
