package eventtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func mustSpec(t *testing.T, eventDate string, endDate, startTime, endTime *string) Spec {
	t.Helper()
	spec, err := ParseSpec(eventDate, endDate, startTime, endTime)
	require.NoError(t, err)
	return spec
}

func at(y int, m time.Month, d, h, mi, s, ms int) time.Time {
	return time.Date(y, m, d, h, mi, s, ms*int(time.Millisecond), time.UTC)
}

func TestTimestamps_DateOnly(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-06-10", strp("2024-06-12"), nil, strp("10:00"))

	_, ok := calc.Timestamps(spec)

	assert.False(t, ok)
}

func TestTimestamps_EndDefaultsToStart(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", nil, strp("09:30"), nil)

	ts, ok := calc.Timestamps(spec)

	require.True(t, ok)
	assert.Equal(t, at(2024, 3, 15, 9, 30, 0, 0), ts.Start)
	assert.Equal(t, ts.Start, ts.EndBase)
}

func TestTimestamps_EndDateWithoutEndTimeUsesStartClock(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", strp("2024-03-16"), strp("18:00"), nil)

	ts, ok := calc.Timestamps(spec)

	require.True(t, ok)
	assert.Equal(t, at(2024, 3, 16, 18, 0, 0, 0), ts.EndBase)
}

func TestTimestamps_Overnight(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-01-01", nil, strp("23:00:00"), strp("01:00:00"))

	ts, ok := calc.Timestamps(spec)

	require.True(t, ok)
	assert.Equal(t, at(2024, 1, 1, 23, 0, 0, 0), ts.Start)
	assert.Equal(t, at(2024, 1, 2, 1, 0, 0, 0), ts.EndBase)
}

func TestTimestamps_ExplicitEndDateSuppressesOvernight(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-01-01", strp("2024-01-03"), strp("23:00:00"), strp("01:00:00"))

	ts, ok := calc.Timestamps(spec)

	require.True(t, ok)
	assert.Equal(t, at(2024, 1, 3, 1, 0, 0, 0), ts.EndBase)
}

func TestTimestamps_EqualEndIsNotOvernight(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-01-01", nil, strp("10:00"), strp("10:00"))

	ts, _ := calc.Timestamps(spec)

	assert.Equal(t, ts.Start, ts.EndBase)
}

func TestWindow_Timed(t *testing.T) {
	calc := New(time.UTC)
	specs := []Spec{
		mustSpec(t, "2024-03-15", nil, strp("09:00:00"), strp("11:00:00")),
		mustSpec(t, "2024-01-01", nil, strp("23:00"), strp("01:00")),
		mustSpec(t, "2024-01-01", strp("2024-01-03"), strp("08:15"), strp("17:45")),
		mustSpec(t, "2024-07-04", nil, strp("6"), nil),
	}

	for _, spec := range specs {
		ts, ok := calc.Timestamps(spec)
		require.True(t, ok)

		w := calc.Window(spec)
		assert.Equal(t, ts.Start.Add(-2*time.Hour), w.Start)
		assert.Equal(t, ts.EndBase, w.End)
	}
}

func TestWindow_DateOnlyIsSingleDay(t *testing.T) {
	calc := New(time.UTC)
	for _, endDate := range []*string{nil, strp("2024-06-14")} {
		spec := mustSpec(t, "2024-06-10", endDate, nil, nil)

		w := calc.Window(spec)

		assert.Equal(t, at(2024, 6, 10, 0, 0, 0, 0), w.Start)
		assert.Equal(t, at(2024, 6, 10, 23, 59, 59, 999), w.End)
	}
}

func TestWindow_UsesCalculatorLocation(t *testing.T) {
	loc := time.FixedZone("WAT", 60*60)
	calc := New(loc)
	spec := mustSpec(t, "2024-03-15", nil, strp("09:00"), strp("11:00"))

	w := calc.Window(spec)

	assert.Equal(t, time.Date(2024, 3, 15, 7, 0, 0, 0, loc), w.Start)
	// 10:00 UTC is 11:00 in WAT
	assert.True(t, calc.Within(spec, at(2024, 3, 15, 10, 0, 0, 0)))
	assert.False(t, calc.Within(spec, at(2024, 3, 15, 10, 0, 1, 0)))
}

func TestStatus_TimedBoundaries(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", nil, strp("09:00:00"), strp("11:00:00"))
	start := at(2024, 3, 15, 9, 0, 0, 0)
	end := at(2024, 3, 15, 11, 0, 0, 0)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"just before start", start.Add(-time.Nanosecond), StatusUpcoming},
		{"at start", start, StatusOngoing},
		{"at end", end, StatusOngoing},
		{"just after end", end.Add(time.Nanosecond), StatusEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Status(spec, tt.now))
		})
	}
}

func TestStatus_DateOnlyGrace(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-06-10", nil, nil, nil)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"day before", at(2024, 6, 9, 23, 59, 59, 999), StatusUpcoming},
		{"midnight of event day", at(2024, 6, 10, 0, 0, 0, 0), StatusOngoing},
		{"end of next day", at(2024, 6, 11, 23, 59, 59, 999), StatusOngoing},
		{"two days later", at(2024, 6, 12, 0, 0, 0, 1), StatusEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Status(spec, tt.now))
		})
	}
}

func TestStatus_DateOnlyGraceFollowsEndDate(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-06-10", strp("2024-06-12"), nil, nil)

	assert.Equal(t, StatusOngoing, calc.Status(spec, at(2024, 6, 13, 12, 0, 0, 0)))
	assert.Equal(t, StatusEnded, calc.Status(spec, at(2024, 6, 14, 0, 0, 0, 1)))
}

func TestStatus_OvernightIsOngoingAfterMidnight(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-01-01", nil, strp("23:00:00"), strp("01:00:00"))

	assert.Equal(t, StatusOngoing, calc.Status(spec, at(2024, 1, 2, 0, 30, 0, 0)))
	assert.True(t, calc.Within(spec, at(2024, 1, 2, 0, 30, 0, 0)))
}

func TestWithinAndStatus_LeadInDivergence(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", nil, strp("10:00"), strp("12:00"))
	now := at(2024, 3, 15, 9, 0, 0, 0)

	assert.True(t, calc.Within(spec, now))
	assert.Equal(t, StatusUpcoming, calc.Status(spec, now))
}

func TestScenarios(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", nil, strp("09:00:00"), strp("11:00:00"))

	tests := []struct {
		name       string
		now        time.Time
		wantWithin bool
		wantStatus Status
	}{
		{"lead-in", at(2024, 3, 15, 8, 30, 0, 0), true, StatusUpcoming},
		{"exact end", at(2024, 3, 15, 11, 0, 0, 0), true, StatusOngoing},
		{"one second after end", at(2024, 3, 15, 11, 0, 1, 0), false, StatusEnded},
		{"before lead-in", at(2024, 3, 15, 6, 59, 59, 0), false, StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWithin, calc.Within(spec, tt.now))
			assert.Equal(t, tt.wantStatus, calc.Status(spec, tt.now))
		})
	}
}

func TestWithin_MatchesWindow(t *testing.T) {
	calc := New(time.UTC)
	specs := []Spec{
		mustSpec(t, "2024-03-15", nil, strp("09:00"), strp("11:00")),
		mustSpec(t, "2024-03-15", nil, nil, nil),
		mustSpec(t, "2024-03-15", nil, strp("23:30"), strp("00:30")),
	}
	base := at(2024, 3, 14, 20, 0, 0, 0)

	for _, spec := range specs {
		w := calc.Window(spec)
		for i := 0; i < 96; i++ {
			now := base.Add(time.Duration(i) * 30 * time.Minute)
			want := !now.Before(w.Start) && !now.After(w.End)
			assert.Equal(t, want, calc.Within(spec, now), "spec %+v now %s", spec, now)
		}
	}
}

func TestBadge(t *testing.T) {
	calc := New(time.UTC)
	spec := mustSpec(t, "2024-03-15", nil, strp("09:00"), strp("11:00"))

	assert.Equal(t, Badge{Label: "Starts soon", Style: "blue"}, calc.Badge(spec, at(2024, 3, 15, 8, 0, 0, 0)))
	assert.Equal(t, Badge{Label: "Ongoing", Style: "green"}, calc.Badge(spec, at(2024, 3, 15, 10, 0, 0, 0)))
	assert.Equal(t, Badge{Label: "Ended", Style: "gray"}, calc.Badge(spec, at(2024, 3, 15, 12, 0, 0, 0)))
}

func TestNew_NilLocationIsLocal(t *testing.T) {
	assert.Equal(t, time.Local, New(nil).Location())
}
