package entity

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	valid := []string{"2025-01-05", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		if _, err := ParseDay(s); err != nil {
			t.Fatalf("ParseDay(%q) returned error: %v", s, err)
		}
	}

	invalid := []string{"", "05-01-2025", "2025-1-5", "2025-02-30", "2025-01-05T10:00:00Z", "yesterday"}
	for _, s := range invalid {
		if _, err := ParseDay(s); err == nil {
			t.Fatalf("ParseDay(%q) accepted an invalid day", s)
		}
	}
}

func TestDay_Ordering(t *testing.T) {
	t.Parallel()

	earlier := Day("2025-01-05")
	later := Day("2025-01-06")

	if !earlier.Before(later) || later.Before(earlier) {
		t.Fatal("Before misordered days")
	}
	if !later.After(earlier) || earlier.After(later) {
		t.Fatal("After misordered days")
	}
}

func TestDayOf(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.March, 14, 23, 45, 0, 0, time.UTC)
	if got := DayOf(ts); got != Day("2025-03-14") {
		t.Fatalf("DayOf = %s, want 2025-03-14", got)
	}
	if got := Day("2025-03-14").Time(); !got.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Time() = %v, want midnight UTC", got)
	}
}
