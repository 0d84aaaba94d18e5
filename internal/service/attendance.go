package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
	"github.com/ewhettey/church-attendance/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// clockSkew is how far into the future a capture time may lie.
const clockSkew = 5 * time.Minute

type AttendanceService struct {
	attendanceRepo ports.AttendanceRepo
	personRepo     ports.PersonRepo
	eventRepo      ports.EventRepo
	userRepo       ports.UserRepo
	queue          ports.OfflineQueue
	notifier       ports.Notifier
	calc           *eventtime.Calculator
	logger         logger.Logger
}

func NewAttendanceService(
	attendanceRepo ports.AttendanceRepo,
	personRepo ports.PersonRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	queue ports.OfflineQueue,
	notifier ports.Notifier,
	calc *eventtime.Calculator,
	logger logger.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		personRepo:     personRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		queue:          queue,
		notifier:       notifier,
		calc:           calc,
		logger:         logger,
	}
}

// CheckIn records a live check-in, judged against the window at now. Any
// client supplied capture time is replaced. When storage is unreachable the
// check-in is parked in the offline queue and the result is marked as queued.
func (s *AttendanceService) CheckIn(ctx context.Context, input domain.CheckInInput, now time.Time) (domain.CheckInResult, error) {
	input.CapturedAt = now
	input.Offline = false

	input, err := normalizeCheckIn(input, now)
	if err != nil {
		return domain.CheckInResult{}, err
	}

	a, err := s.Record(ctx, input)
	if err == nil {
		return domain.CheckInResult{Attendance: a}, nil
	}
	if rejected(err) {
		return domain.CheckInResult{}, err
	}

	input.Offline = true
	rec := domain.OfflineRecord{
		ID:       uuid.New().String(),
		Input:    input,
		QueuedAt: now.UTC(),
	}
	if qErr := s.queue.Enqueue(ctx, rec); qErr != nil {
		return domain.CheckInResult{}, fmt.Errorf("record attendance: %w (offline queue: %v)", err, qErr)
	}

	s.logger.Warn("attendance stored offline",
		logger.String("record_id", rec.ID),
		logger.String("event_id", input.EventID),
		logger.String("error", err.Error()),
	)

	return domain.CheckInResult{Queued: true}, nil
}

// Record stores a validated check-in against its event. The attendance
// window is checked at the capture time.
func (s *AttendanceService) Record(ctx context.Context, input domain.CheckInInput) (*domain.Attendance, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.IsActive {
		return nil, domain.ErrEventInactive
	}

	if !s.calc.Within(event.Schedule, input.CapturedAt) {
		return nil, domain.ErrOutsideWindow
	}

	if _, err = s.userRepo.GetByID(ctx, input.MarkedBy); err != nil {
		return nil, fmt.Errorf("check marker: %w", err)
	}

	a := &domain.Attendance{
		ID:         uuid.New().String(),
		EventID:    input.EventID,
		Phone:      input.Phone,
		Name:       input.Name,
		Church:     input.Church,
		Category:   input.Category,
		MarkedBy:   input.MarkedBy,
		Offline:    input.Offline,
		CapturedAt: input.CapturedAt.UTC(),
		CreatedAt:  time.Now().UTC(),
	}
	if input.HowHeard != "" {
		howHeard := input.HowHeard
		a.HowHeard = &howHeard
	}

	if err = s.attendanceRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	s.logger.Info("attendance recorded",
		logger.String("attendance_id", a.ID),
		logger.String("event_id", a.EventID),
		logger.String("category", string(a.Category)),
	)

	if a.Category == domain.CategoryVisitor {
		go s.notifier.NotifyVisitorCheckedIn(context.WithoutCancel(ctx), event, a)
	}

	return a, nil
}

// Lookup finds a member, or failing that a visitor, by phone number.
func (s *AttendanceService) Lookup(ctx context.Context, phone string) (*domain.Person, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	return s.personRepo.GetByPhone(ctx, phone)
}

func normalizeCheckIn(in domain.CheckInInput, now time.Time) (domain.CheckInInput, error) {
	in.EventID = strings.TrimSpace(in.EventID)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Name = strings.TrimSpace(in.Name)
	in.Church = strings.TrimSpace(in.Church)
	in.HowHeard = strings.TrimSpace(in.HowHeard)
	in.MarkedBy = strings.TrimSpace(in.MarkedBy)

	if in.EventID == "" || in.MarkedBy == "" {
		return in, fmt.Errorf("%w: event_id and marked_by are required", domain.ErrValidation)
	}
	if in.Phone == "" || in.Name == "" || in.Church == "" {
		return in, fmt.Errorf("%w: phone, name and church are required", domain.ErrValidation)
	}

	switch in.Category {
	case domain.CategoryMember:
		in.HowHeard = ""
	case domain.CategoryVisitor:
		if !domain.ValidHowHeard(in.HowHeard) {
			return in, fmt.Errorf("%w: how_heard must be one of %s",
				domain.ErrValidation, strings.Join(domain.HowHeardOptions, ", "))
		}
	default:
		return in, fmt.Errorf("%w: category must be Member or Visitor", domain.ErrValidation)
	}

	if in.CapturedAt.IsZero() {
		in.CapturedAt = now
	}
	if in.CapturedAt.After(now.Add(clockSkew)) {
		return in, fmt.Errorf("%w: captured_at is in the future", domain.ErrValidation)
	}

	return in, nil
}

// rejected reports whether err is a final answer about the check-in itself,
// as opposed to a storage failure worth retrying.
func rejected(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrEventNotFound,
		domain.ErrUserNotFound,
		domain.ErrEventInactive,
		domain.ErrOutsideWindow,
		domain.ErrAlreadyCheckedIn,
		context.Canceled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
