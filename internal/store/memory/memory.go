// Package memory implements the shift store on an in-process slice. Nothing
// survives the process; it exists for tests and for running the CLI without
// touching disk.
package memory

import (
	"context"
	"sync"

	"turni/internal/core"
	"turni/internal/store"
)

type Store struct {
	mu     sync.Mutex
	shifts []core.Shift
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Seeded returns a store preloaded with the given shifts.
func Seeded(shifts []core.Shift) *Store {
	s := &Store{}
	s.shifts = append(s.shifts, shifts...)
	return s
}

func (s *Store) Load(_ context.Context) ([]core.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Shift, len(s.shifts))
	copy(out, s.shifts)
	return out, nil
}

func (s *Store) Save(_ context.Context, shifts []core.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts = make([]core.Shift, len(shifts))
	copy(s.shifts, shifts)
	return nil
}
