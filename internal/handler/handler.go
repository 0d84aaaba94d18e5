package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
	"github.com/ewhettey/church-attendance/internal/handler/dto"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string, now time.Time) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter, now time.Time) ([]domain.EventView, error)
	Feed(ctx context.Context, now time.Time) ([]byte, error)
}

type AttendanceSvc interface {
	CheckIn(ctx context.Context, input domain.CheckInInput, now time.Time) (domain.CheckInResult, error)
	Lookup(ctx context.Context, phone string) (*domain.Person, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type SyncSvc interface {
	Enqueue(ctx context.Context, inputs []domain.CheckInInput, now time.Time) (int, error)
	Pending(ctx context.Context) (int64, error)
	Sync(ctx context.Context) (domain.SyncResult, error)
}

type Handler struct {
	eventService      EventSvc
	attendanceService AttendanceSvc
	userService       UserSvc
	syncService       SyncSvc
	now               func() time.Time
}

func NewHandler(eventService EventSvc, attendanceService AttendanceSvc, userService UserSvc, syncService SyncSvc) *Handler {
	return &Handler{
		eventService:      eventService,
		attendanceService: attendanceService,
		userService:       userService,
		syncService:       syncService,
		now:               time.Now,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Tab:   domain.EventTab(c.Query("tab")),
		Query: c.Query("q"),
	}

	views, err := h.eventService.List(c.Request.Context(), filter, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventViewResponse, 0, len(views))
	for i := range views {
		resp = append(resp, dto.ToEventViewResponse(&views[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CalendarFeed(c *ginext.Context) {
	body, err := h.eventService.Feed(c.Request.Context(), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}

// Attendance

func (h *Handler) CheckIn(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.attendanceService.CheckIn(c.Request.Context(), req.ToInput(id), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Queued {
		status = http.StatusAccepted
	}

	c.JSON(status, dto.ToCheckInResponse(res))
}

func (h *Handler) LookupPerson(c *ginext.Context) {
	person, err := h.attendanceService.Lookup(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// Offline

func (h *Handler) EnqueueOffline(c *ginext.Context) {
	var req dto.OfflineBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	n, err := h.syncService.Enqueue(c.Request.Context(), req.ToInputs(), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToEnqueueResponse(n))
}

func (h *Handler) OfflineStatus(c *ginext.Context) {
	n, err := h.syncService.Pending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QueueStatusResponse{Pending: n})
}

func (h *Handler) SyncOffline(c *ginext.Context) {
	res, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncResponse(res))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Role:     domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrOutsideWindow),
		errors.Is(err, domain.ErrEventInactive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAllowed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, eventtime.ErrInvalidSpec):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
