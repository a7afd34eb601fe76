package worker

import (
	"context"
	"fmt"
	"log/slog"

	"turni/internal/amqp"
	"turni/internal/sheets"
	"turni/internal/store"
)

// SyncWorker mirrors the shift collection from local storage to a spreadsheet.
// Persistence is full-rewrite, so every sync rereads the whole collection and
// replaces the mirror rather than applying deltas.
type SyncWorker struct {
	store  store.Store
	mirror sheets.ShiftMirror
}

func NewSyncWorker(st store.Store, mirror sheets.ShiftMirror) *SyncWorker {
	return &SyncWorker{
		store:  st,
		mirror: mirror,
	}
}

// HandleSyncMessage processes a single shift sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.ShiftSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"count", msg.Count,
		"timestamp", msg.Timestamp)

	return w.MirrorPass(ctx)
}

// MirrorPass reads every shift from storage and rewrites the mirror.
// It also runs periodically as a backup in case AMQP messages are lost.
func (w *SyncWorker) MirrorPass(ctx context.Context) error {
	shifts, err := w.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load shifts from storage: %w", err)
	}

	if err := w.mirror.ReplaceAll(ctx, shifts); err != nil {
		return fmt.Errorf("mirror shifts: %w", err)
	}

	slog.InfoContext(ctx, "Successfully mirrored shifts", "count", len(shifts))

	return nil
}
