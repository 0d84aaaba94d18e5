package ports

import (
	"context"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type OfflineQueue interface {
	Enqueue(ctx context.Context, recs ...domain.OfflineRecord) error
	Len(ctx context.Context) (int64, error)
	// Drain hands every queued record to fn once. Records for which fn
	// returns false stay queued.
	Drain(ctx context.Context, fn func(context.Context, domain.OfflineRecord) bool) error
}
