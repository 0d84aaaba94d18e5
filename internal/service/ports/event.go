package ports

import (
	"context"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListActive(ctx context.Context) ([]*domain.Event, error)
	// ListActiveSince returns active events whose last day is on or after since.
	ListActiveSince(ctx context.Context, since eventtime.Date) ([]*domain.Event, error)
	Deactivate(ctx context.Context, ids []string) (int, error)
}
