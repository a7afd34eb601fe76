// Package services holds the orchestration glue between the storage port and
// the async mirror pipeline.
package services

import (
	"context"
	"log/slog"

	"turni/internal/core"
	"turni/internal/store"
)

// SyncPublisher is the slice of the AMQP client the sync store needs.
type SyncPublisher interface {
	PublishShiftSync(ctx context.Context, count int) error
}

// SyncStore decorates a store with a best-effort sync notification after
// every successful Save. Publish failures are logged and swallowed: the local
// write already succeeded and the worker's periodic pass will heal the mirror.
type SyncStore struct {
	inner     store.Store
	publisher SyncPublisher
}

var _ store.Store = (*SyncStore)(nil)

func NewSyncStore(inner store.Store, publisher SyncPublisher) *SyncStore {
	return &SyncStore{inner: inner, publisher: publisher}
}

func (s *SyncStore) Load(ctx context.Context) ([]core.Shift, error) {
	return s.inner.Load(ctx)
}

func (s *SyncStore) Save(ctx context.Context, shifts []core.Shift) error {
	if err := s.inner.Save(ctx, shifts); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishShiftSync(ctx, len(shifts)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sync message",
				"count", len(shifts), "error", err)
			// Don't fail the save - shifts are persisted locally
		}
	}

	return nil
}
