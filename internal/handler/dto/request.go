package dto

import (
	"strings"
	"time"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type EventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    string  `json:"location"`
	Church      string  `json:"church" binding:"required"`
	EventType   string  `json:"event_type"`
	IsActive    *bool   `json:"is_active"`
	ActorID     string  `json:"actor_id" binding:"required,uuid"`
}

// ToInput treats blank optional fields as absent, the way form clients
// send them.
func (r EventRequest) ToInput() domain.EventInput {
	return domain.EventInput{
		Name:        r.Name,
		Description: r.Description,
		EventDate:   r.EventDate,
		EndDate:     optional(r.EndDate),
		StartTime:   optional(r.StartTime),
		EndTime:     optional(r.EndTime),
		Location:    r.Location,
		Church:      r.Church,
		EventType:   r.EventType,
		IsActive:    r.IsActive,
		ActorID:     r.ActorID,
	}
}

type CheckInRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Church   string `json:"church" binding:"required"`
	Category string `json:"category" binding:"required"`
	HowHeard string `json:"how_heard"`
	MarkedBy string `json:"marked_by" binding:"required,uuid"`
}

func (r CheckInRequest) ToInput(eventID string) domain.CheckInInput {
	return domain.CheckInInput{
		EventID:  eventID,
		Phone:    r.Phone,
		Name:     r.Name,
		Church:   r.Church,
		Category: domain.Category(r.Category),
		HowHeard: r.HowHeard,
		MarkedBy: r.MarkedBy,
	}
}

type OfflineCheckInRequest struct {
	EventID    string    `json:"event_id" binding:"required,uuid"`
	Phone      string    `json:"phone" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Church     string    `json:"church" binding:"required"`
	Category   string    `json:"category" binding:"required"`
	HowHeard   string    `json:"how_heard"`
	MarkedBy   string    `json:"marked_by" binding:"required,uuid"`
	CapturedAt time.Time `json:"captured_at" binding:"required"`
}

type OfflineBatchRequest struct {
	Records []OfflineCheckInRequest `json:"records" binding:"required,min=1,dive"`
}

func (r OfflineBatchRequest) ToInputs() []domain.CheckInInput {
	res := make([]domain.CheckInInput, 0, len(r.Records))
	for _, rec := range r.Records {
		res = append(res, domain.CheckInInput{
			EventID:    rec.EventID,
			Phone:      rec.Phone,
			Name:       rec.Name,
			Church:     rec.Church,
			Category:   domain.Category(rec.Category),
			HowHeard:   rec.HowHeard,
			MarkedBy:   rec.MarkedBy,
			CapturedAt: rec.CapturedAt,
			Offline:    true,
		})
	}
	return res
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role"`
}

func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
