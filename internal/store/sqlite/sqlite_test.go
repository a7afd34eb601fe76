package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"turni/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "turni.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	shifts, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(shifts) != 0 {
		t.Fatalf("Load on fresh database = %d shifts, want 0", len(shifts))
	}
}

func TestSavePreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Deliberately unsorted, with a duplicate date: order must come back
	// exactly as inserted, not sorted by the database.
	in := []core.Shift{
		{Date: "2025-03-01", Hours: 8, Rate: 12.5, Note: "opening"},
		{Date: "2025-01-10", Hours: 5.5, Rate: 11},
		{Date: "2025-01-10", Hours: 2, Rate: 11, Note: "late cover"},
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("Load = %d shifts, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("shift %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []core.Shift{
		{Date: "2025-01-01", Hours: 1, Rate: 10},
		{Date: "2025-01-02", Hours: 2, Rate: 10},
	}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(ctx, []core.Shift{{Date: "2025-02-01", Hours: 3, Rate: 10}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != 1 || out[0].Date != "2025-02-01" {
		t.Fatalf("Load after overwrite = %+v, want the single second-batch shift", out)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turni.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s.Close()

	// Reopening runs migrations again; must be a no-op.
	s, err = New(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	s.Close()
}
