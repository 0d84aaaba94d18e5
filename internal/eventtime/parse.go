package eventtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSpec = errors.New("invalid event time spec")

const dateLayout = "2006-01-02"

// Date is a calendar day without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Clock is a wall-clock time of day without a zone.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: date is empty", ErrInvalidSpec)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidSpec, s)
	}
	return DateOf(t), nil
}

// ParseClock accepts H, HH:MM and HH:MM:SS. Missing components are zero.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clock{}, fmt.Errorf("%w: time is empty", ErrInvalidSpec)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Clock{}, fmt.Errorf("%w: time %q has too many components", ErrInvalidSpec, s)
	}

	limits := [3]int{23, 59, 59}
	var vals [3]int
	for i, p := range parts {
		if !digits(p) {
			return Clock{}, fmt.Errorf("%w: time %q is not HH:MM[:SS]", ErrInvalidSpec, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > limits[i] {
			return Clock{}, fmt.Errorf("%w: time %q is not HH:MM[:SS]", ErrInvalidSpec, s)
		}
		vals[i] = n
	}

	return Clock{Hour: vals[0], Minute: vals[1], Second: vals[2]}, nil
}

// digits reports whether p is one or two ASCII digits.
func digits(p string) bool {
	if p == "" || len(p) > 2 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseSpec validates raw schedule fields. A nil optional field is absent;
// a present but blank one is rejected.
func ParseSpec(eventDate string, endDate, startTime, endTime *string) (Spec, error) {
	var spec Spec

	d, err := ParseDate(eventDate)
	if err != nil {
		return Spec{}, fmt.Errorf("event_date: %w", err)
	}
	spec.EventDate = d

	if endDate != nil {
		ed, err := ParseDate(*endDate)
		if err != nil {
			return Spec{}, fmt.Errorf("end_date: %w", err)
		}
		spec.EndDate = &ed
	}

	if startTime != nil {
		st, err := ParseClock(*startTime)
		if err != nil {
			return Spec{}, fmt.Errorf("start_time: %w", err)
		}
		spec.StartTime = &st
	}

	if endTime != nil {
		et, err := ParseClock(*endTime)
		if err != nil {
			return Spec{}, fmt.Errorf("end_time: %w", err)
		}
		spec.EndTime = &et
	}

	return spec, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}
