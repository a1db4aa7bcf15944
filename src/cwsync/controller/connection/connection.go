// Package connection owns the live session with one Codewind server: the
// cached project mirror, the dirty-flag fetch throttle, and the push-event
// subscription that keeps the mirror current.
package connection

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/gateway/auth"
	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	pfeclient "github.com/codewind/cwsync/src/cwsync/gateway/pfe-client"
	"github.com/codewind/cwsync/src/cwsync/internal/clock"
	"github.com/codewind/cwsync/src/cwsync/internal/socket"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// _restartTimeout bounds the wait for a restarted application to come back up.
const _restartTimeout = 3 * time.Minute

// Session is the live mirror of one server's project list.
type Session interface {
	// Info returns a copy of the connection descriptor.
	Info() entity.ConnectionInfo
	// URL returns the normalized server URL, the session's identity.
	URL() string
	// IsConnected reports the event channel transport status. It is
	// independent of whether the REST API is currently reachable.
	IsConnected() bool

	// GetProjects returns the cached project list, fetching from the server
	// only when the cache is dirty.
	GetProjects(ctx context.Context) ([]*entity.Project, error)
	// GetProjectByID returns the cached project, or nil if absent. Absence
	// is a normal condition for stale references, not an error.
	GetProjectByID(ctx context.Context, projectID string) (*entity.Project, error)
	// ForceRefresh marks the cache dirty and repopulates it eagerly.
	ForceRefresh(ctx context.Context)

	// RequestRestart asks the server to restart a project. The outcome is
	// reported asynchronously via a projectRestartResult event.
	RequestRestart(ctx context.Context, projectID, startMode string) error
	// RequestBuild queues a build for a project.
	RequestBuild(ctx context.Context, projectID string) error

	// Close tears the session down: the event channel is shut and every
	// pending state wait is rejected. A closed session must not be reused.
	Close()

	socket.Handler
}

// Factory builds sessions wired to the process-wide gateways.
type Factory interface {
	// New creates a session for info and opens its event channel. notify is
	// the registry's change fan-out signal.
	New(info *entity.ConnectionInfo, notify func()) Session
}

// Params define values used to build session factories.
type Params struct {
	fx.In

	PFE    pfeclient.Gateway
	IDE    ideclient.Gateway
	Auth   auth.Gateway
	Clock  clock.Clock
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type sessionFactory struct {
	p Params
}

// NewFactory returns a session Factory.
func NewFactory(p Params) Factory {
	return &sessionFactory{p: p}
}

func (f *sessionFactory) New(info *entity.ConnectionInfo, notify func()) Session {
	s := &session{
		info:         *info,
		pfe:          f.p.PFE,
		ide:          f.p.IDE,
		logger:       f.p.Logger,
		stats:        f.p.Stats.SubScope("session"),
		notify:       notify,
		projects:     make(map[string]*entity.Project),
		needsRefresh: true,
	}

	header := http.Header{}
	if token, ok := f.p.Auth.BearerToken(info.Host); ok {
		header.Set("Authorization", "Bearer "+token)
	}
	s.channel = socket.Open(socket.Params{
		BaseURL:   info.URL,
		Namespace: info.SocketNamespace,
		Header:    header,
		Handler:   s,
		Clock:     f.p.Clock,
		Logger:    f.p.Logger,
		Stats:     f.p.Stats,
	})
	return s
}

type session struct {
	info   entity.ConnectionInfo
	pfe    pfeclient.Gateway
	ide    ideclient.Gateway
	logger *zap.SugaredLogger
	stats  tally.Scope
	notify func()

	mu           sync.Mutex
	projects     map[string]*entity.Project
	needsRefresh bool
	fetchDone    chan struct{}
	connected    bool
	closed       bool
	channel      socket.Channel

	// pending tracks goroutines spawned for restart completion reporting,
	// so Close can wait for them.
	pending sync.WaitGroup
}

func (s *session) Info() entity.ConnectionInfo {
	return s.info
}

func (s *session) URL() string {
	return s.info.URL
}

func (s *session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// GetProjects serves from cache unless the dirty flag is set. Concurrent
// callers while a fetch is in flight wait for that fetch rather than issuing
// their own; a failed fetch leaves the flag set so the next call retries.
func (s *session) GetProjects(ctx context.Context) ([]*entity.Project, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil, fmt.Errorf("connection to %s has been removed", s.info.URL)
		}
		if !s.needsRefresh {
			list := s.snapshotLocked()
			s.mu.Unlock()
			return list, nil
		}
		if s.fetchDone != nil {
			done := s.fetchDone
			s.mu.Unlock()
			<-done
			// Re-evaluate: the fetch may have failed and left the flag set,
			// in which case this caller performs its own.
			continue
		}
		done := make(chan struct{})
		s.fetchDone = done
		s.mu.Unlock()

		descriptors, err := s.pfe.GetProjects(ctx, s.info.URL)

		s.mu.Lock()
		var list []*entity.Project
		var updates []projectUpdate
		var removed []*entity.Project
		changed := false
		if err == nil {
			updates, removed, changed = s.reconcileLocked(descriptors)
			s.needsRefresh = false
			list = s.snapshotLocked()
		}
		s.fetchDone = nil
		s.mu.Unlock()
		close(done)

		if err != nil {
			s.stats.Counter("fetch_failures").Inc(1)
			return nil, fmt.Errorf("fetching projects from %s: %w", s.info.URL, err)
		}

		// State application happens outside the session lock; each project
		// guards itself and may fire the change fan-out.
		for _, u := range updates {
			u.project.Update(u.snapshot)
		}
		for _, p := range removed {
			p.MarkDeleted()
		}
		if changed {
			s.notifyChanged()
		}
		return list, nil
	}
}

func (s *session) GetProjectByID(ctx context.Context, projectID string) (*entity.Project, error) {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *session) ForceRefresh(ctx context.Context) {
	s.mu.Lock()
	s.needsRefresh = true
	s.mu.Unlock()

	if _, err := s.GetProjects(ctx); err != nil {
		// Reconciliation step: nobody is waiting on this, so log it and let
		// the flag stay set for the next caller.
		s.logger.Errorf("refreshing projects for %s: %v", s.info.URL, err)
	}
}

func (s *session) RequestRestart(ctx context.Context, projectID, startMode string) error {
	return s.pfe.RequestRestart(ctx, s.info.URL, projectID, startMode)
}

func (s *session) RequestBuild(ctx context.Context, projectID string) error {
	return s.pfe.RequestBuild(ctx, s.info.URL, projectID)
}

func (s *session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	channel := s.channel
	s.channel = nil
	orphans := make([]*entity.Project, 0, len(s.projects))
	for _, p := range s.projects {
		orphans = append(orphans, p)
	}
	s.projects = make(map[string]*entity.Project)
	s.mu.Unlock()

	if channel != nil {
		channel.Close()
	}
	for _, p := range orphans {
		p.MarkDeleted()
	}
	s.pending.Wait()
}

// projectUpdate pairs a project with the snapshot to apply to it.
type projectUpdate struct {
	project  *entity.Project
	snapshot *entity.StatusSnapshot
}

// reconcileLocked diffs incoming descriptors against the arena. Existing
// projects keep their identity, so pending state waits survive a refresh
// unless the project was genuinely deleted server-side. Caller holds s.mu;
// the returned updates and removals are applied outside the lock.
func (s *session) reconcileLocked(descriptors []model.ProjectDescriptor) ([]projectUpdate, []*entity.Project, bool) {
	changed := false
	seen := make(map[string]bool, len(descriptors))
	updates := make([]projectUpdate, 0, len(descriptors))

	for i := range descriptors {
		d := &descriptors[i]
		if d.ProjectID == "" {
			s.logger.Errorf("project descriptor from %s has no ID, skipping", s.info.URL)
			continue
		}
		seen[d.ProjectID] = true

		p, ok := s.projects[d.ProjectID]
		if !ok {
			p = entity.NewProject(d.ProjectID, d.Name, s.notifyChanged)
			p.Type = entity.ProjectTypeOf(d.BuildType)
			p.Language = d.Language
			p.LocalPath = d.LocOnDisk
			p.ContextRoot = d.ContextRoot
			s.projects[d.ProjectID] = p
			changed = true
		}
		updates = append(updates, projectUpdate{project: p, snapshot: mapper.DescriptorToSnapshot(d)})
	}

	var removed []*entity.Project
	for id, p := range s.projects {
		if !seen[id] {
			removed = append(removed, p)
			delete(s.projects, id)
			changed = true
		}
	}
	return updates, removed, changed
}

// snapshotLocked returns the cached projects in stable name order.
func (s *session) snapshotLocked() []*entity.Project {
	list := make([]*entity.Project, 0, len(s.projects))
	for _, p := range s.projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func (s *session) notifyChanged() {
	if s.notify != nil {
		s.notify()
	}
}

func (s *session) lookup(projectID string) *entity.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects[projectID]
}
