package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type attendanceRecorder interface {
	Record(ctx context.Context, input domain.CheckInInput) (*domain.Attendance, error)
}

// SyncService forwards check-ins captured while offline once storage is
// reachable again.
type SyncService struct {
	queue       ports.OfflineQueue
	recorder    attendanceRecorder
	notifier    ports.Notifier
	maxAttempts int
	logger      logger.Logger

	mu sync.Mutex
}

func NewSyncService(
	queue ports.OfflineQueue,
	recorder attendanceRecorder,
	notifier ports.Notifier,
	maxAttempts int,
	logger logger.Logger,
) *SyncService {
	return &SyncService{
		queue:       queue,
		recorder:    recorder,
		notifier:    notifier,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Enqueue stores a batch of check-ins captured by a disconnected client.
// The batch is rejected as a whole if any record is invalid.
func (s *SyncService) Enqueue(ctx context.Context, inputs []domain.CheckInInput, now time.Time) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: no records", domain.ErrValidation)
	}

	recs := make([]domain.OfflineRecord, 0, len(inputs))
	for i, in := range inputs {
		if in.CapturedAt.IsZero() {
			return 0, fmt.Errorf("%w: record %d: captured_at is required", domain.ErrValidation, i)
		}

		norm, err := normalizeCheckIn(in, now)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		norm.Offline = true

		recs = append(recs, domain.OfflineRecord{
			ID:       uuid.New().String(),
			Input:    norm,
			QueuedAt: now.UTC(),
		})
	}

	if err := s.queue.Enqueue(ctx, recs...); err != nil {
		return 0, fmt.Errorf("enqueue offline records: %w", err)
	}

	s.logger.Info("offline records queued",
		logger.Int("count", len(recs)),
	)

	return len(recs), nil
}

func (s *SyncService) Pending(ctx context.Context) (int64, error) {
	n, err := s.queue.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("offline queue length: %w", err)
	}
	return n, nil
}

// Sync drains the offline queue once. Records that fail for a transient
// reason stay queued until they run out of attempts.
func (s *SyncService) Sync(ctx context.Context) (domain.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res domain.SyncResult
	err := s.queue.Drain(ctx, func(ctx context.Context, rec domain.OfflineRecord) bool {
		_, err := s.recorder.Record(ctx, rec.Input)
		switch {
		case err == nil:
			res.Synced++
			return true
		case rejected(err):
			res.Rejected++
			s.logger.Warn("offline record rejected",
				logger.String("record_id", rec.ID),
				logger.String("event_id", rec.Input.EventID),
				logger.String("error", err.Error()),
			)
			return true
		case rec.Attempts+1 >= s.maxAttempts:
			res.Rejected++
			s.logger.Error("offline record dropped after retries",
				logger.String("record_id", rec.ID),
				logger.Int("attempts", rec.Attempts+1),
				logger.String("error", err.Error()),
			)
			return true
		default:
			res.Failed++
			return false
		}
	})
	if err != nil {
		return res, fmt.Errorf("drain offline queue: %w", err)
	}

	if !res.Empty() {
		s.logger.Info("offline sync finished",
			logger.Int("synced", res.Synced),
			logger.Int("failed", res.Failed),
			logger.Int("rejected", res.Rejected),
		)
		go s.notifier.NotifySyncCompleted(context.WithoutCancel(ctx), res)
	}

	return res, nil
}
