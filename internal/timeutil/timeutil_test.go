package timeutil_test

import (
	"testing"
	"time"

	"github.com/tiliamara/worklog/internal/timeutil"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Second, "0m"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m"},
		{time.Hour, "1h 0m"},
		{time.Hour + time.Minute + time.Second, "1h 1m"},
		{90 * time.Minute, "1h 30m"},
		{26 * time.Hour, "26h 0m"},
	}
	for _, tt := range tests {
		got := timeutil.FormatDuration(tt.d)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	monday, sunday := timeutil.WeekRange(fri)

	wantMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}

	// Sunday belongs to the week that began the previous Monday.
	sun := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	monday, _ = timeutil.WeekRange(sun)
	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday for a Sunday = %v, want %v", monday, wantMonday)
	}
}

func TestMonthRange(t *testing.T) {
	d := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	first, last := timeutil.MonthRange(d)

	wantFirst := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	wantLast := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !first.Equal(wantFirst) {
		t.Errorf("MonthRange first = %v, want %v", first, wantFirst)
	}
	if !last.Equal(wantLast) {
		t.Errorf("MonthRange last = %v, want %v", last, wantLast)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timeutil.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timeutil.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestDateOf(t *testing.T) {
	d := timeutil.DateOf(time.Date(2026, 2, 27, 18, 45, 12, 0, time.UTC))
	want := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("DateOf = %v, want %v", d, want)
	}
}
