package services

import (
	"context"
	"errors"
	"testing"

	"turni/internal/core"
	"turni/internal/store/memory"
)

type recordingPublisher struct {
	counts []int
	err    error
}

func (p *recordingPublisher) PublishShiftSync(_ context.Context, count int) error {
	p.counts = append(p.counts, count)
	return p.err
}

func TestSaveNotifiesPublisher(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSyncStore(memory.New(), pub)
	ctx := context.Background()

	shifts := []core.Shift{
		{Date: "2025-01-01", Hours: 1, Rate: 10},
		{Date: "2025-01-02", Hours: 2, Rate: 10},
	}
	if err := s.Save(ctx, shifts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(pub.counts) != 1 || pub.counts[0] != 2 {
		t.Fatalf("publisher calls = %v, want one call with count 2", pub.counts)
	}
}

func TestPublishFailureDoesNotFailSave(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	mem := memory.New()
	s := NewSyncStore(mem, pub)
	ctx := context.Background()

	if err := s.Save(ctx, []core.Shift{{Date: "2025-01-01", Hours: 1, Rate: 10}}); err != nil {
		t.Fatalf("Save must not propagate publish errors, got: %v", err)
	}
	out, err := mem.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("inner store holds %d shifts, want 1", len(out))
	}
}

func TestSaveFailureSkipsPublish(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSyncStore(failStore{}, pub)

	if err := s.Save(context.Background(), nil); err == nil {
		t.Fatalf("Save expected inner store error")
	}
	if len(pub.counts) != 0 {
		t.Fatalf("publisher called despite failed save")
	}
}

func TestNilPublisher(t *testing.T) {
	s := NewSyncStore(memory.New(), nil)
	if err := s.Save(context.Background(), nil); err != nil {
		t.Fatalf("Save with nil publisher failed: %v", err)
	}
}

type failStore struct{}

func (failStore) Load(context.Context) ([]core.Shift, error) { return nil, nil }
func (failStore) Save(context.Context, []core.Shift) error   { return errors.New("write failed") }
