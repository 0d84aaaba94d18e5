package domain

import (
	"slices"
	"time"
)

type Category string

const (
	CategoryMember  Category = "Member"
	CategoryVisitor Category = "Visitor"
)

// HowHeardOptions are the answers a visitor can give for how they found the church.
var HowHeardOptions = []string{"Friend", "Social Media", "Evangelism", "Invitation", "Other"}

func ValidHowHeard(s string) bool {
	return slices.Contains(HowHeardOptions, s)
}

type Attendance struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Church     string    `json:"church"`
	HowHeard   *string   `json:"how_heard"`
	Category   Category  `json:"category"`
	MarkedBy   string    `json:"marked_by"`
	Offline    bool      `json:"offline"`
	CapturedAt time.Time `json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type CheckInInput struct {
	EventID    string    `json:"event_id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Church     string    `json:"church"`
	Category   Category  `json:"category"`
	HowHeard   string    `json:"how_heard,omitempty"`
	MarkedBy   string    `json:"marked_by"`
	CapturedAt time.Time `json:"captured_at"`
	Offline    bool      `json:"offline,omitempty"`
}

type CheckInResult struct {
	Attendance *Attendance
	Queued     bool
}

// Person is a member or visitor known by phone number.
type Person struct {
	Phone    string   `json:"phone"`
	Name     string   `json:"name"`
	Church   string   `json:"church"`
	HowHeard *string  `json:"how_heard"`
	Category Category `json:"category"`
}
