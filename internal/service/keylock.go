package service

import (
	"sync"

	"github.com/shenikar/accident_responder_system/internal/models"
)

// keyedMutex is an arena of per-incident locks. Mutations on one incident are
// serialized while different incidents proceed fully in parallel. Entries are
// reference counted so the arena does not grow with the incident history.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[string]*lockEntry)}
}

// Lock acquires the exclusive section for key and returns the release func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &lockEntry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// inflightGuard tracks dispatch actions currently executing, keyed by
// incident id and action kind. A second request for the same pair while one
// is in flight is rejected instead of double-executing the external call.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]bool)}
}

// Acquire marks the (incident, kind) pair as in flight. It returns false if
// another request already holds the slot.
func (g *inflightGuard) Acquire(incidentID string, kind models.ActionKind) (func(), bool) {
	key := incidentID + "|" + string(kind)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[key] {
		return nil, false
	}
	g.active[key] = true
	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, true
}
