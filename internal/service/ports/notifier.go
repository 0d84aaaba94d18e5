package ports

import (
	"context"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type Notifier interface {
	NotifyVisitorCheckedIn(ctx context.Context, event *domain.Event, a *domain.Attendance)
	NotifySyncCompleted(ctx context.Context, result domain.SyncResult)
}
