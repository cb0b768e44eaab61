// Package store owns the single application snapshot.
package store

import (
	"fmt"
	"sync"

	"CampusHub/internal/model"
)

// Transform computes the next snapshot from the current one.
type Transform func(model.State) (model.State, error)

// Store serialises transforms and replaces the snapshot whole.
type Store struct {
	mu      sync.Mutex
	state   model.State
	version uint64
	subs    map[int]func(model.State)
	nextSub int
}

// New creates a Store holding the boot snapshot.
func New(initial model.State) *Store {
	return &Store{state: initial, subs: make(map[int]func(model.State))}
}

// Snapshot returns the current state. Callers must not modify its slices.
func (s *Store) Snapshot() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version counts committed transforms.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Apply runs t against the current snapshot and commits the result.
// On error or panic the previous snapshot stays in place.
func (s *Store) Apply(t Transform) (model.State, error) {
	next, subs, err := s.commit(t)
	if err != nil {
		return next, err
	}
	for _, fn := range subs {
		fn(next)
	}
	return next, nil
}

func (s *Store) commit(t Transform) (next model.State, subs []func(model.State), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			next, subs, err = s.state, nil, fmt.Errorf("transform panicked: %v", r)
		}
	}()

	next, err = t(s.state)
	if err != nil {
		return s.state, nil, err
	}
	s.state = next
	s.version++
	subs = make([]func(model.State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return next, subs, nil
}

// Subscribe registers fn to observe every committed snapshot. The returned func unregisters it.
func (s *Store) Subscribe(fn func(model.State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Reset replaces the snapshot with a fresh boot state, like a page reload.
func (s *Store) Reset(initial model.State) {
	_, _ = s.Apply(func(model.State) (model.State, error) { return initial, nil })
}
