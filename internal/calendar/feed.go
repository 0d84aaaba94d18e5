// Package calendar renders events as an iCalendar feed that phones and
// desktop calendars can subscribe to.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
)

const productID = "-//church-attendance//Event Feed//EN"

// Feed builds a VCALENDAR with one VEVENT per event. Timed events carry
// their start and end instants, date-only events become all-day entries
// spanning event_date through their last day.
func Feed(name string, events []*domain.Event, calc *eventtime.Calculator, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone(calc.Location().String())

	for _, e := range events {
		addEvent(cal, e, calc, now)
	}

	return cal.Serialize()
}

func addEvent(cal *ical.Calendar, e *domain.Event, calc *eventtime.Calculator, now time.Time) {
	ev := cal.AddEvent(e.ID + "@church-attendance")
	ev.SetDtStampTime(now)
	if !e.UpdatedAt.IsZero() {
		ev.SetLastModifiedAt(e.UpdatedAt)
	}
	ev.SetSummary(e.Name)
	ev.SetStatus(ical.ObjectStatusConfirmed)

	if loc := location(e); loc != "" {
		ev.SetLocation(loc)
	}
	if desc := description(e); desc != "" {
		ev.SetDescription(desc)
	}

	if ts, ok := calc.Timestamps(e.Schedule); ok {
		ev.SetStartAt(ts.Start)
		ev.SetEndAt(ts.EndBase)
		return
	}

	// DTEND of an all-day entry is exclusive.
	ev.SetAllDayStartAt(calc.Midnight(e.Schedule.EventDate))
	ev.SetAllDayEndAt(calc.Midnight(e.Schedule.LastDate()).AddDate(0, 0, 1))
}

func location(e *domain.Event) string {
	switch {
	case e.Location != "" && e.Church != "":
		return fmt.Sprintf("%s, %s", e.Location, e.Church)
	case e.Location != "":
		return e.Location
	default:
		return e.Church
	}
}

func description(e *domain.Event) string {
	parts := make([]string, 0, 2)
	if e.EventType != "" {
		parts = append(parts, e.EventType)
	}
	if d := strings.TrimSpace(e.Description); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, "\n")
}
