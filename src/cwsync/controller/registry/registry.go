// Package registry owns the process-wide set of connection sessions, their
// persistence, and the change notification fan-out UI collaborators
// subscribe to. It is an explicitly constructed instance, injected into its
// collaborators; one per process is the default wiring, not a requirement.
package registry

import (
	"context"
	"sync"

	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/internal/settings"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/repository/connections"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller is the registry of live connections.
type Controller interface {
	// AddConnection creates and stores a session for a validated connection.
	// A URL with a live session is rejected without creating a second one.
	AddConnection(ctx context.Context, info *entity.ConnectionInfo) (connection.Session, error)
	// RemoveConnection destroys the session for a URL. Reports whether a
	// session was found; an unknown URL is logged, not an error.
	RemoveConnection(ctx context.Context, url string) bool
	// GetConnection returns the session for a normalized URL.
	GetConnection(url string) (connection.Session, bool)
	// Connections returns a snapshot of every session in insertion order.
	Connections() []connection.Session
	// TreeItems renders the current connections and their projects as the
	// tagged-union items UI collaborators consume.
	TreeItems(ctx context.Context) []entity.TreeItem
	// Subscribe registers a change listener and returns its unsubscribe
	// function. Listeners fire synchronously in registration order.
	Subscribe(fn func()) (unsubscribe func())
}

// Params are inbound parameters to build the registry.
type Params struct {
	fx.In

	Sessions  connections.Repository
	Settings  settings.Store
	Factory   connection.Factory
	Logger    *zap.SugaredLogger
	Lifecycle fx.Lifecycle
}

type listenerEntry struct {
	id int
	fn func()
}

type controller struct {
	sessions connections.Repository
	settings settings.Store
	factory  connection.Factory
	logger   *zap.SugaredLogger

	listenersMu  sync.Mutex
	listeners    []listenerEntry
	nextListener int
}

// New creates the registry and hooks session restore/teardown into the
// application lifecycle.
func New(p Params) Controller {
	c := &controller{
		sessions: p.Sessions,
		settings: p.Settings,
		factory:  p.Factory,
		logger:   p.Logger,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.restore,
		OnStop:  c.teardown,
	})

	return c
}

func (c *controller) AddConnection(ctx context.Context, info *entity.ConnectionInfo) (connection.Session, error) {
	if _, ok := c.sessions.Get(info.URL); ok {
		return nil, errors.ErrDuplicateConnection
	}

	s := c.factory.New(info, c.notifyChanged)
	if err := c.sessions.Add(s); err != nil {
		// Lost a race to a concurrent add for the same URL.
		s.Close()
		return nil, err
	}

	c.persist()
	c.notifyChanged()
	return s, nil
}

func (c *controller) RemoveConnection(ctx context.Context, url string) bool {
	s, ok := c.sessions.Remove(url)
	if !ok {
		c.logger.Errorf("no connection to %s to remove", url)
		return false
	}

	s.Close()
	c.persist()
	c.notifyChanged()
	return true
}

func (c *controller) GetConnection(url string) (connection.Session, bool) {
	return c.sessions.Get(url)
}

func (c *controller) Connections() []connection.Session {
	return c.sessions.List()
}

func (c *controller) TreeItems(ctx context.Context) []entity.TreeItem {
	var items []entity.TreeItem
	for _, s := range c.sessions.List() {
		info := s.Info()
		items = append(items, entity.TreeItem{
			Kind:       entity.TreeItemConnection,
			Connection: &info,
		})

		projects, err := s.GetProjects(ctx)
		if err != nil {
			c.logger.Errorf("listing projects for %s: %v", info.URL, err)
			continue
		}
		for _, p := range projects {
			items = append(items, entity.TreeItem{
				Kind:    entity.TreeItemProject,
				Project: p,
			})
		}
	}
	return items
}

func (c *controller) Subscribe(fn func()) func() {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	id := c.nextListener
	c.nextListener++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// notifyChanged invokes every listener in registration order. It runs
// outside the listeners lock so a listener may unsubscribe itself.
func (c *controller) notifyChanged() {
	c.listenersMu.Lock()
	fns := make([]func(), len(c.listeners))
	for i, l := range c.listeners {
		fns[i] = l.fn
	}
	c.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// restore re-establishes every persisted connection at startup. A descriptor
// that cannot be restored becomes a logged skip; an unreachable server still
// gets its session, which shows as disconnected until its event channel
// comes up.
func (c *controller) restore(ctx context.Context) error {
	descriptors, err := c.settings.LoadConnections()
	if err != nil {
		c.logger.Errorf("loading saved connections: %v", err)
		return nil
	}

	restored := 0
	for i := range descriptors {
		info, err := mapper.DescriptorToInfo(&descriptors[i])
		if err != nil {
			c.logger.Errorf("skipping saved connection %q: %v", descriptors[i].URL, err)
			continue
		}
		s := c.factory.New(info, c.notifyChanged)
		if err := c.sessions.Add(s); err != nil {
			s.Close()
			c.logger.Errorf("skipping saved connection %q: %v", info.URL, err)
			continue
		}
		restored++
	}

	if restored > 0 {
		c.logger.Infof("restored %v saved connection(s)", restored)
		c.notifyChanged()
	}
	return nil
}

func (c *controller) teardown(ctx context.Context) error {
	for _, s := range c.sessions.List() {
		if removed, ok := c.sessions.Remove(s.URL()); ok {
			removed.Close()
		}
	}
	return nil
}

// persist writes the descriptor list to durable settings. A failed write is
// logged rather than propagated: the connection itself is live for this run
// and the next successful add or remove rewrites the full list.
func (c *controller) persist() {
	if err := c.settings.SaveConnections(c.sessions.Descriptors()); err != nil {
		c.logger.Errorf("saving connections: %v", err)
	}
}
