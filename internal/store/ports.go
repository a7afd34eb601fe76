package store

import (
	"context"

	"turni/internal/core"
)

// Store is the port between the in-memory shift collection and whatever medium
// persists it. Implementations replace the whole collection on Save; there is
// no incremental append, so a Save after Add rewrites everything.
type Store interface {
	// Load returns every stored shift in store order. A backing store that
	// does not exist yet yields an empty slice and no error: first run must
	// not fail. Any record that fails to decode aborts the whole load.
	Load(ctx context.Context) ([]core.Shift, error)

	// Save replaces the entire store contents with the given shifts, in the
	// given order. No atomicity is guaranteed; a crash mid-write can leave
	// the store truncated.
	Save(ctx context.Context, shifts []core.Shift) error
}
