package worker

import (
	"context"
	"errors"
	"testing"

	"turni/internal/amqp"
	"turni/internal/core"
	"turni/internal/store/memory"
)

type fakeMirror struct {
	calls [][]core.Shift
	err   error
}

func (m *fakeMirror) ReplaceAll(_ context.Context, shifts []core.Shift) error {
	m.calls = append(m.calls, shifts)
	return m.err
}

func TestHandleSyncMessageMirrorsWholeCollection(t *testing.T) {
	shifts := []core.Shift{
		{Date: "2025-06-01", Hours: 8, Rate: 15, Note: "Day"},
		{Date: "2025-06-02", Hours: 4, Rate: 20},
	}
	mirror := &fakeMirror{}
	w := NewSyncWorker(memory.Seeded(shifts), mirror)

	msg := amqp.NewShiftSyncMessage(len(shifts))
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleSyncMessage failed: %v", err)
	}

	if len(mirror.calls) != 1 {
		t.Fatalf("mirror called %d times, want 1", len(mirror.calls))
	}
	if len(mirror.calls[0]) != 2 {
		t.Fatalf("mirrored %d shifts, want 2", len(mirror.calls[0]))
	}
	if mirror.calls[0][0].Date != "2025-06-01" {
		t.Errorf("first mirrored shift date = %q, want 2025-06-01", mirror.calls[0][0].Date)
	}
}

func TestMirrorPassEmptyStore(t *testing.T) {
	mirror := &fakeMirror{}
	w := NewSyncWorker(memory.New(), mirror)

	if err := w.MirrorPass(context.Background()); err != nil {
		t.Fatalf("MirrorPass failed: %v", err)
	}
	if len(mirror.calls) != 1 {
		t.Fatalf("mirror called %d times, want 1", len(mirror.calls))
	}
	if len(mirror.calls[0]) != 0 {
		t.Fatalf("mirrored %d shifts, want 0", len(mirror.calls[0]))
	}
}

func TestMirrorPassPropagatesMirrorError(t *testing.T) {
	mirror := &fakeMirror{err: errors.New("sheets unavailable")}
	w := NewSyncWorker(memory.New(), mirror)

	err := w.MirrorPass(context.Background())
	if err == nil {
		t.Fatalf("expected mirror error")
	}
	if !errors.Is(err, mirror.err) {
		t.Errorf("error %v does not wrap mirror error", err)
	}
}

func TestMirrorPassPropagatesLoadError(t *testing.T) {
	mirror := &fakeMirror{}
	w := NewSyncWorker(brokenStore{}, mirror)

	if err := w.MirrorPass(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if len(mirror.calls) != 0 {
		t.Fatalf("mirror called despite load failure")
	}
}

type brokenStore struct{}

func (brokenStore) Load(context.Context) ([]core.Shift, error) {
	return nil, errors.New("disk error")
}

func (brokenStore) Save(context.Context, []core.Shift) error { return nil }
