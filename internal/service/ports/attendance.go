package ports

import (
	"context"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type AttendanceRepo interface {
	// Create upserts the person into the member or visitor directory and
	// stores the attendance in one transaction.
	Create(ctx context.Context, a *domain.Attendance) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error)
}

type PersonRepo interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Person, error)
}
