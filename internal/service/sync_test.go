package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recorderFunc func(ctx context.Context, input domain.CheckInInput) (*domain.Attendance, error)

func (f recorderFunc) Record(ctx context.Context, input domain.CheckInInput) (*domain.Attendance, error) {
	return f(ctx, input)
}

// drainOver makes the queue mock hand recs to fn and collect the ones kept.
func drainOver(recs []domain.OfflineRecord, kept *[]domain.OfflineRecord) func(context.Context, func(context.Context, domain.OfflineRecord) bool) error {
	return func(ctx context.Context, fn func(context.Context, domain.OfflineRecord) bool) error {
		for _, rec := range recs {
			if !fn(ctx, rec) {
				*kept = append(*kept, rec)
			}
		}
		return nil
	}
}

func offlineRecord(id, phone string, attempts int) domain.OfflineRecord {
	return domain.OfflineRecord{
		ID: id,
		Input: domain.CheckInInput{
			EventID:    "e1",
			Phone:      phone,
			Name:       "Kofi",
			Church:     "Grace Chapel",
			Category:   domain.CategoryMember,
			MarkedBy:   "usher-1",
			CapturedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Offline:    true,
		},
		Attempts: attempts,
	}
}

func TestSyncService_Enqueue(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)
	svc := NewSyncService(queue, nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	inputs := []domain.CheckInInput{
		offlineRecord("", "0241", 0).Input,
		offlineRecord("", "0242", 0).Input,
	}
	inputs[0].Offline = false
	inputs[1].Name = "  Esi  "

	isQueued := func(rec domain.OfflineRecord) bool {
		return rec.ID != "" && rec.Input.Offline && rec.QueuedAt.Equal(now)
	}
	queue.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(isQueued), mock.MatchedBy(func(rec domain.OfflineRecord) bool {
		return isQueued(rec) && rec.Input.Name == "Esi"
	})).Return(nil)

	n, err := svc.Enqueue(context.Background(), inputs, now)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSyncService_Enqueue_RequiresCaptureTime(t *testing.T) {
	svc := NewSyncService(mocks.NewMockOfflineQueue(t), nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))

	input := offlineRecord("", "0241", 0).Input
	input.CapturedAt = time.Time{}

	_, err := svc.Enqueue(context.Background(), []domain.CheckInInput{input}, time.Now())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSyncService_Enqueue_RejectsFutureCaptureTime(t *testing.T) {
	svc := NewSyncService(mocks.NewMockOfflineQueue(t), nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	input := offlineRecord("", "0241", 0).Input
	input.CapturedAt = now.Add(time.Hour)

	_, err := svc.Enqueue(context.Background(), []domain.CheckInInput{input}, now)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSyncService_Enqueue_RejectsWholeBatch(t *testing.T) {
	svc := NewSyncService(mocks.NewMockOfflineQueue(t), nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))

	bad := offlineRecord("", "", 0).Input

	_, err := svc.Enqueue(context.Background(),
		[]domain.CheckInInput{offlineRecord("", "0241", 0).Input, bad},
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "record 1")
}

func TestSyncService_Enqueue_Empty(t *testing.T) {
	svc := NewSyncService(mocks.NewMockOfflineQueue(t), nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))

	_, err := svc.Enqueue(context.Background(), nil, time.Now())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSyncService_Pending(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)
	svc := NewSyncService(queue, nil, mocks.NewMockNotifier(t), 10, newTestLogger(t))

	queue.EXPECT().Len(mock.Anything).Return(int64(4), nil)

	n, err := svc.Pending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestSyncService_Sync_SortsOutcomes(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)
	notifier := mocks.NewMockNotifier(t)

	recs := []domain.OfflineRecord{
		offlineRecord("ok", "0241", 0),
		offlineRecord("dup", "0242", 0),
		offlineRecord("flaky", "0243", 2),
		offlineRecord("exhausted", "0244", 2),
	}
	recorder := recorderFunc(func(_ context.Context, in domain.CheckInInput) (*domain.Attendance, error) {
		switch in.Phone {
		case "0241":
			return &domain.Attendance{ID: "a1"}, nil
		case "0242":
			return nil, domain.ErrAlreadyCheckedIn
		default:
			return nil, errors.New("connection refused")
		}
	})
	recs[3].Attempts = 4

	var kept []domain.OfflineRecord
	queue.EXPECT().Drain(mock.Anything, mock.Anything).RunAndReturn(drainOver(recs, &kept))

	done := make(chan domain.SyncResult, 1)
	notifier.EXPECT().NotifySyncCompleted(mock.Anything, mock.Anything).
		Run(func(_ context.Context, res domain.SyncResult) { done <- res }).
		Return()

	svc := NewSyncService(queue, recorder, notifier, 5, newTestLogger(t))

	res, err := svc.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.SyncResult{Synced: 1, Failed: 1, Rejected: 2}, res)
	require.Len(t, kept, 1)
	assert.Equal(t, "flaky", kept[0].ID)

	select {
	case got := <-done:
		assert.Equal(t, res, got)
	case <-time.After(time.Second):
		t.Fatal("sync notification was not sent")
	}
}

func TestSyncService_Sync_EmptyQueueIsQuiet(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)
	recorder := recorderFunc(func(context.Context, domain.CheckInInput) (*domain.Attendance, error) {
		t.Fatal("recorder must not be called")
		return nil, nil
	})

	queue.EXPECT().Drain(mock.Anything, mock.Anything).Return(nil)

	svc := NewSyncService(queue, recorder, mocks.NewMockNotifier(t), 5, newTestLogger(t))

	res, err := svc.Sync(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestSyncService_Sync_DrainError(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)

	queue.EXPECT().Drain(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := NewSyncService(queue, nil, mocks.NewMockNotifier(t), 5, newTestLogger(t))

	_, err := svc.Sync(context.Background())

	assert.Error(t, err)
}

func TestSyncService_Sync_Serialized(t *testing.T) {
	queue := mocks.NewMockOfflineQueue(t)

	var (
		mu       sync.Mutex
		inFlight int
		maxSeen  int
	)
	queue.EXPECT().Drain(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, func(context.Context, domain.OfflineRecord) bool) error {
			mu.Lock()
			inFlight++
			if inFlight > maxSeen {
				maxSeen = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		})

	svc := NewSyncService(queue, nil, mocks.NewMockNotifier(t), 5, newTestLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Sync(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}
