package calendar

import (
	"testing"
	"time"
)

func TestWeekKey(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-10-17", "2026-W42"},
		{"2021-01-03", "2020-W53"}, // воскресенье относится к последней неделе 2020
		{"2021-01-04", "2021-W01"},
		{"2024-12-30", "2025-W01"},
	}

	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			d, err := ParseDateKey(tc.date, time.UTC)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := WeekKey(d); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDateKeyUsesClockLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	instant := time.Date(2026, 10, 17, 22, 30, 0, 0, time.UTC)

	if got := DateKey(instant); got != "2026-10-17" {
		t.Fatalf("expected 2026-10-17 in UTC, got %s", got)
	}
	if got := DateKey(instant.In(loc)); got != "2026-10-18" {
		t.Fatalf("expected 2026-10-18 in UTC+3, got %s", got)
	}
}

func TestDisplayDate(t *testing.T) {
	d := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	if got := DisplayDate(d); got != "05.03.2026" {
		t.Fatalf("expected 05.03.2026, got %s", got)
	}
}

func TestLastNDates(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	got := LastNDates(now, 3)
	want := []string{"2026-02-28", "2026-03-01", "2026-03-02"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected keys[%d]=%s, got %s", i, want[i], got[i])
		}
	}

	if empty := LastNDates(now, 0); len(empty) != 0 {
		t.Fatalf("expected no keys for n=0, got %v", empty)
	}
}

func TestFixedClockAdvanceDays(t *testing.T) {
	clock := &FixedClock{T: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)}
	clock.AdvanceDays(2)
	if got := DateKey(clock.Now()); got != "2026-10-19" {
		t.Fatalf("expected 2026-10-19, got %s", got)
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	if _, err := ParseDateKey("17.10.2026", time.UTC); err == nil {
		t.Fatal("expected error for non ISO date key")
	}
}
