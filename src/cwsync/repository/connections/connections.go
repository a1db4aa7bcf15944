// Package connections is the in-memory store of live connection sessions,
// keyed by normalized server URL.
package connections

import (
	"sync"

	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	tally "github.com/uber-go/tally/v4"
)

// Repository is an entity-scoped store of live sessions.
type Repository interface {
	// Add stores a session. At most one session may exist per URL; a
	// duplicate is rejected with ErrDuplicateConnection.
	Add(s connection.Session) error
	// Get returns the session for a normalized URL.
	Get(url string) (connection.Session, bool)
	// Remove removes and returns the session for a URL.
	Remove(url string) (connection.Session, bool)
	// List returns every session in insertion order.
	List() []connection.Session
	// Descriptors returns the persisted form of every session, in insertion
	// order.
	Descriptors() []model.ConnectionDescriptor
}

type repository struct {
	mu       sync.Mutex
	memstore map[string]connection.Session
	order    []string
	stats    tally.Scope
}

// New returns a Repository backed by an in-memory map.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[string]connection.Session),
		stats:    stats,
	}
}

func (r *repository) Add(s connection.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	url := s.URL()
	if _, ok := r.memstore[url]; ok {
		return errors.ErrDuplicateConnection
	}
	r.memstore[url] = s
	r.order = append(r.order, url)
	r.stats.Gauge("active_connections").Update(float64(len(r.memstore)))
	return nil
}

func (r *repository) Get(url string) (connection.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[url]
	return s, ok
}

func (r *repository) Remove(url string) (connection.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[url]
	if !ok {
		return nil, false
	}
	delete(r.memstore, url)
	for i, known := range r.order {
		if known == url {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.stats.Gauge("active_connections").Update(float64(len(r.memstore)))
	return s, true
}

func (r *repository) List() []connection.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]connection.Session, 0, len(r.order))
	for _, url := range r.order {
		list = append(list, r.memstore[url])
	}
	return list
}

func (r *repository) Descriptors() []model.ConnectionDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	descriptors := make([]model.ConnectionDescriptor, 0, len(r.order))
	for _, url := range r.order {
		info := r.memstore[url].Info()
		descriptors = append(descriptors, *mapper.InfoToDescriptor(&info))
	}
	return descriptors
}
