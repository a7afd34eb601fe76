package sheets

import (
	"context"

	"turni/internal/core"
)

// ShiftMirror is the outbound port for mirroring the shift collection into an
// external spreadsheet. Mirroring is one-directional and replaces the whole
// target, matching the store's full-rewrite persistence model.
type ShiftMirror interface {
	ReplaceAll(ctx context.Context, shifts []core.Shift) error
}
