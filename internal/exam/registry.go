package exam

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("exam session not found")

type entry struct {
	session  *Session
	owner    string
	cancel   context.CancelFunc
	lastSeen time.Time
}

// Registry holds live sessions in memory. Sessions survive client reloads
// but not a process restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry), now: time.Now}
}

// NewID returns a fresh, unguessable session id.
func (r *Registry) NewID() string {
	return uuid.NewString()
}

// Put stores s under owner, which must be non-empty. cancel stops its clock
// goroutine when the session is removed.
func (r *Registry) Put(s *Session, owner string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = &entry{session: s, owner: owner, cancel: cancel, lastSeen: r.now()}
}

func (e *entry) ownedBy(owner string) bool {
	return owner != "" && e.owner == owner
}

// Get returns the session if owner started it.
func (r *Registry) Get(id, owner string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok || !e.ownedBy(owner) {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.session, nil
}

// Remove drops the session and cancels its clock.
func (r *Registry) Remove(id, owner string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if !ok || !e.ownedBy(owner) {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}
	return nil
}

// Sweep evicts submitted sessions not accessed within ttl. A session whose
// clock is still running is never evicted, since its timeout submit has yet
// to fire; each sweep counts it as seen, so idleness starts once it ends.
func (r *Registry) Sweep(ttl time.Duration) int {
	now := r.now()
	cutoff := now.Add(-ttl)
	var evicted []*entry

	r.mu.Lock()
	for id, e := range r.sessions {
		if !e.session.Submitted() {
			e.lastSeen = now
			continue
		}
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, e)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, e := range evicted {
		if e.cancel != nil {
			e.cancel()
		}
	}
	return len(evicted)
}

// Close cancels every clock and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range all {
		if e.cancel != nil {
			e.cancel()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
