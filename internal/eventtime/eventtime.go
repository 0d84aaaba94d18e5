// Package eventtime computes when attendance may be recorded for an event
// and where the event is in its lifecycle.
//
// Dates and times are civil values. They are turned into instants in the
// calculator's location, so the same spec always yields the same wall-clock
// instants regardless of the zone "now" was taken in.
package eventtime

import "time"

// CheckInLead is how long before the start ushers may begin checking people in.
const CheckInLead = 2 * time.Hour

const day = 24 * time.Hour

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusEnded    Status = "ended"
)

// Spec is the schedule of a single event. A nil pointer means the field is absent.
type Spec struct {
	EventDate Date
	EndDate   *Date
	StartTime *Clock
	EndTime   *Clock
}

// Timed reports whether the event has a start time.
func (s Spec) Timed() bool {
	return s.StartTime != nil
}

func (s Spec) LastDate() Date {
	if s.EndDate != nil {
		return *s.EndDate
	}
	return s.EventDate
}

type Timestamps struct {
	Start   time.Time
	EndBase time.Time
}

type Window struct {
	Start time.Time
	End   time.Time
}

// Contains is inclusive at both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type Badge struct {
	Label string
	Style string
}

var badges = map[Status]Badge{
	StatusUpcoming: {Label: "Starts soon", Style: "blue"},
	StatusEnded:    {Label: "Ended", Style: "gray"},
	StatusOngoing:  {Label: "Ongoing", Style: "green"},
}

type Calculator struct {
	loc *time.Location
}

// New returns a calculator that interprets civil dates and times in loc.
// A nil loc means time.Local.
func New(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{loc: loc}
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Timestamps returns the start and base end instants of a timed event.
// ok is false for date-only events.
func (c *Calculator) Timestamps(s Spec) (ts Timestamps, ok bool) {
	if s.StartTime == nil {
		return Timestamps{}, false
	}

	start := c.at(s.EventDate, *s.StartTime)

	endClock := *s.StartTime
	if s.EndTime != nil {
		endClock = *s.EndTime
	}
	endBase := c.at(s.LastDate(), endClock)

	// Overnight: an end time before the start with no explicit end date rolls
	// into the next day.
	if s.EndDate == nil && s.EndTime != nil && endBase.Before(start) {
		endBase = endBase.Add(day)
	}

	return Timestamps{Start: start, EndBase: endBase}, true
}

func (c *Calculator) Window(s Spec) Window {
	ts, ok := c.Timestamps(s)
	if !ok {
		// date-only events are single-day, whatever the end date says
		return Window{
			Start: c.midnight(s.EventDate),
			End:   c.endOfDay(s.EventDate),
		}
	}
	return Window{
		Start: ts.Start.Add(-CheckInLead),
		End:   ts.EndBase,
	}
}

func (c *Calculator) Within(s Spec, now time.Time) bool {
	return c.Window(s).Contains(now)
}

// Status flips to ongoing at the literal start, not at the window start, so
// during the lead-in an event is still upcoming while check-in is open.
// Date-only events stay ongoing through the whole day after their last day.
func (c *Calculator) Status(s Spec, now time.Time) Status {
	ts, ok := c.Timestamps(s)
	if !ok {
		eventDay := c.midnight(s.EventDate)
		graceEnd := c.endOfDay(s.LastDate()).Add(day)

		switch {
		case now.Before(eventDay):
			return StatusUpcoming
		case now.After(graceEnd):
			return StatusEnded
		default:
			return StatusOngoing
		}
	}

	switch {
	case now.Before(ts.Start):
		return StatusUpcoming
	case now.After(ts.EndBase):
		return StatusEnded
	default:
		return StatusOngoing
	}
}

func (c *Calculator) Badge(s Spec, now time.Time) Badge {
	return badges[c.Status(s, now)]
}

// Today is the calendar day of now in the calculator's location.
func (c *Calculator) Today(now time.Time) Date {
	return DateOf(now.In(c.loc))
}

func (c *Calculator) Midnight(d Date) time.Time {
	return c.midnight(d)
}

func (c *Calculator) at(d Date, clk Clock) time.Time {
	return time.Date(d.Year, d.Month, d.Day, clk.Hour, clk.Minute, clk.Second, 0, c.loc)
}

func (c *Calculator) midnight(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, c.loc)
}

func (c *Calculator) endOfDay(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, int(999*time.Millisecond), c.loc)
}
