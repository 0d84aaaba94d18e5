package domain

import (
	"time"

	"github.com/ewhettey/church-attendance/internal/eventtime"
)

const DefaultEventType = "Service"

type Event struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schedule    eventtime.Spec `json:"schedule"`
	Location    string         `json:"location"`
	Church      string         `json:"church"`
	EventType   string         `json:"event_type"`
	IsActive    bool           `json:"is_active"`
	CreatedBy   *string        `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// EventView is an event as seen at a given instant.
type EventView struct {
	Event      Event            `json:"event"`
	Status     eventtime.Status `json:"status"`
	Badge      eventtime.Badge  `json:"badge"`
	Window     eventtime.Window `json:"window"`
	CanCheckIn bool             `json:"can_check_in"`
}

type EventDetails struct {
	View       EventView    `json:"view"`
	Attendance []Attendance `json:"attendance"`
	Members    int          `json:"members"`
	Visitors   int          `json:"visitors"`
}

type EventTab string

const (
	TabAll      EventTab = ""
	TabOngoing  EventTab = "ongoing"
	TabUpcoming EventTab = "upcoming"
	TabPast     EventTab = "past"
)

type EventFilter struct {
	Tab   EventTab
	Query string
}

type EventInput struct {
	Name        string
	Description string
	EventDate   string
	EndDate     *string
	StartTime   *string
	EndTime     *string
	Location    string
	Church      string
	EventType   string
	IsActive    *bool
	ActorID     string
}
