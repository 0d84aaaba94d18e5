package dto

import (
	"time"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
)

const queuedMessage = "Stored offline, will sync when online"

// windowLayout keeps milliseconds so an inclusive 23:59:59.999 bound survives.
const windowLayout = "2006-01-02T15:04:05.000Z07:00"

type EventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    string  `json:"location"`
	Church      string  `json:"church"`
	EventType   string  `json:"event_type"`
	IsActive    bool    `json:"is_active"`
	CreatedBy   *string `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type BadgeResponse struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type EventViewResponse struct {
	Event      EventResponse  `json:"event"`
	Status     string         `json:"status"`
	Badge      BadgeResponse  `json:"badge"`
	Window     WindowResponse `json:"window"`
	CanCheckIn bool           `json:"can_check_in"`
}

type EventDetailsResponse struct {
	EventViewResponse
	Members    int                  `json:"members"`
	Visitors   int                  `json:"visitors"`
	Attendance []AttendanceResponse `json:"attendance"`
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"event_id"`
	Phone      string  `json:"phone"`
	Name       string  `json:"name"`
	Church     string  `json:"church"`
	Category   string  `json:"category"`
	HowHeard   *string `json:"how_heard"`
	MarkedBy   string  `json:"marked_by"`
	Offline    bool    `json:"offline"`
	CapturedAt string  `json:"captured_at"`
	CreatedAt  string  `json:"created_at"`
}

type CheckInResponse struct {
	Status     string              `json:"status"`
	Message    string              `json:"message,omitempty"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type PersonResponse struct {
	Phone    string  `json:"phone"`
	Name     string  `json:"name"`
	Church   string  `json:"church"`
	HowHeard *string `json:"how_heard"`
	Category string  `json:"category"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type EnqueueResponse struct {
	Queued  int    `json:"queued"`
	Message string `json:"message"`
}

type QueueStatusResponse struct {
	Pending int64 `json:"pending"`
}

type SyncResponse struct {
	Synced   int `json:"synced"`
	Failed   int `json:"failed"`
	Rejected int `json:"rejected"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	s := e.Schedule
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   s.EventDate.String(),
		EndDate:     dateString(s.EndDate),
		StartTime:   clockString(s.StartTime),
		EndTime:     clockString(s.EndTime),
		Location:    e.Location,
		Church:      e.Church,
		EventType:   e.EventType,
		IsActive:    e.IsActive,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventViewResponse(v *domain.EventView) EventViewResponse {
	window := WindowResponse{
		Start: v.Window.Start.Format(windowLayout),
		End:   v.Window.End.Format(windowLayout),
	}

	return EventViewResponse{
		Event:      ToEventResponse(&v.Event),
		Status:     string(v.Status),
		Badge:      BadgeResponse{Label: v.Badge.Label, Style: v.Badge.Style},
		Window:     window,
		CanCheckIn: v.CanCheckIn,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	attendance := make([]AttendanceResponse, 0, len(d.Attendance))
	for i := range d.Attendance {
		attendance = append(attendance, ToAttendanceResponse(&d.Attendance[i]))
	}

	return EventDetailsResponse{
		EventViewResponse: ToEventViewResponse(&d.View),
		Members:           d.Members,
		Visitors:          d.Visitors,
		Attendance:        attendance,
	}
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EventID:    a.EventID,
		Phone:      a.Phone,
		Name:       a.Name,
		Church:     a.Church,
		Category:   string(a.Category),
		HowHeard:   a.HowHeard,
		MarkedBy:   a.MarkedBy,
		Offline:    a.Offline,
		CapturedAt: a.CapturedAt.Format(time.RFC3339),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func ToCheckInResponse(r domain.CheckInResult) CheckInResponse {
	if r.Queued || r.Attendance == nil {
		return CheckInResponse{Status: "queued", Message: queuedMessage}
	}
	a := ToAttendanceResponse(r.Attendance)
	return CheckInResponse{Status: "recorded", Attendance: &a}
}

func ToEnqueueResponse(n int) EnqueueResponse {
	return EnqueueResponse{Queued: n, Message: queuedMessage}
}

func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		Phone:    p.Phone,
		Name:     p.Name,
		Church:   p.Church,
		HowHeard: p.HowHeard,
		Category: string(p.Category),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToSyncResponse(r domain.SyncResult) SyncResponse {
	return SyncResponse{Synced: r.Synced, Failed: r.Failed, Rejected: r.Rejected}
}

func dateString(d *eventtime.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func clockString(c *eventtime.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
