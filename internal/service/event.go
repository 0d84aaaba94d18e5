package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ewhettey/church-attendance/internal/calendar"
	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
	"github.com/ewhettey/church-attendance/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const calendarName = "Church Events"

type EventService struct {
	repo           ports.EventRepo
	attendanceRepo ports.AttendanceRepo
	userRepo       ports.UserRepo
	calc           *eventtime.Calculator
	logger         logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	attendanceRepo ports.AttendanceRepo,
	userRepo ports.UserRepo,
	calc *eventtime.Calculator,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		calc:           calc,
		logger:         logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	schedule, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err = s.authorize(ctx, input.ActorID); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	actor := input.ActorID
	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Schedule:    schedule,
		Location:    strings.TrimSpace(input.Location),
		Church:      strings.TrimSpace(input.Church),
		EventType:   eventType(input.EventType),
		IsActive:    isActive,
		CreatedBy:   &actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("event_date", schedule.EventDate.String()),
		logger.String("created_by", actor),
	)

	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error) {
	schedule, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err = s.authorize(ctx, input.ActorID); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Name = strings.TrimSpace(input.Name)
	event.Description = strings.TrimSpace(input.Description)
	event.Schedule = schedule
	event.Location = strings.TrimSpace(input.Location)
	event.Church = strings.TrimSpace(input.Church)
	event.EventType = eventType(input.EventType)
	if input.IsActive != nil {
		event.IsActive = *input.IsActive
	}
	event.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns active events that have not ended before yesterday, each
// evaluated at now.
func (s *EventService) List(ctx context.Context, filter domain.EventFilter, now time.Time) ([]domain.EventView, error) {
	want, err := tabStatus(filter.Tab)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.ListActiveSince(ctx, s.yesterday(now))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	res := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		if query != "" && !matches(e, query) {
			continue
		}
		v := s.view(e, now)
		if want != "" && v.Status != want {
			continue
		}
		res = append(res, v)
	}

	return res, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string, now time.Time) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	details := &domain.EventDetails{
		View:       s.view(event, now),
		Attendance: make([]domain.Attendance, len(records)),
	}
	for i, a := range records {
		details.Attendance[i] = *a
		if a.Category == domain.CategoryVisitor {
			details.Visitors++
		} else {
			details.Members++
		}
	}

	return details, nil
}

// DeactivateElapsed switches off every active event that has ended at now.
func (s *EventService) DeactivateElapsed(ctx context.Context, now time.Time) (int, error) {
	events, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active events: %w", err)
	}

	var ids []string
	for _, e := range events {
		if s.calc.Status(e.Schedule, now) == eventtime.StatusEnded {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := s.repo.Deactivate(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("deactivate events: %w", err)
	}

	s.logger.Info("elapsed events deactivated",
		logger.Int("count", n),
	)

	return n, nil
}

// Feed renders active events as an iCalendar document.
func (s *EventService) Feed(ctx context.Context, now time.Time) ([]byte, error) {
	events, err := s.repo.ListActiveSince(ctx, s.yesterday(now))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return []byte(calendar.Feed(calendarName, events, s.calc, now)), nil
}

func (s *EventService) view(e *domain.Event, now time.Time) domain.EventView {
	return domain.EventView{
		Event:      *e,
		Status:     s.calc.Status(e.Schedule, now),
		Badge:      s.calc.Badge(e.Schedule, now),
		Window:     s.calc.Window(e.Schedule),
		CanCheckIn: e.IsActive && s.calc.Within(e.Schedule, now),
	}
}

func (s *EventService) yesterday(now time.Time) eventtime.Date {
	return eventtime.DateOf(s.calc.Midnight(s.calc.Today(now)).AddDate(0, 0, -1))
}

func (s *EventService) validate(input domain.EventInput) (eventtime.Spec, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Church) == "" {
		return eventtime.Spec{}, fmt.Errorf("%w: name, event_date and church are required", domain.ErrValidation)
	}

	spec, err := eventtime.ParseSpec(input.EventDate, input.EndDate, input.StartTime, input.EndTime)
	if err != nil {
		return eventtime.Spec{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if spec.EndDate != nil && spec.EndDate.Before(spec.EventDate) {
		return eventtime.Spec{}, fmt.Errorf("%w: end_date must not be before event_date", domain.ErrValidation)
	}

	if ts, ok := s.calc.Timestamps(spec); ok && ts.EndBase.Before(ts.Start) {
		return eventtime.Spec{}, fmt.Errorf("%w: end must be after start", domain.ErrValidation)
	}

	return spec, nil
}

func (s *EventService) authorize(ctx context.Context, actorID string) error {
	if actorID == "" {
		return fmt.Errorf("%w: actor_id is required", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("check actor: %w", err)
	}

	if !user.Role.CanManageEvents() {
		return domain.ErrNotAllowed
	}

	return nil
}

func tabStatus(tab domain.EventTab) (eventtime.Status, error) {
	switch tab {
	case domain.TabAll:
		return "", nil
	case domain.TabOngoing:
		return eventtime.StatusOngoing, nil
	case domain.TabUpcoming:
		return eventtime.StatusUpcoming, nil
	case domain.TabPast:
		return eventtime.StatusEnded, nil
	default:
		return "", fmt.Errorf("%w: unknown tab %q", domain.ErrValidation, tab)
	}
}

func matches(e *domain.Event, query string) bool {
	for _, field := range []string{e.Name, e.Church, e.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func eventType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return domain.DefaultEventType
	}
	return t
}
