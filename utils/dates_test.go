package utils

import (
	"testing"
	"time"
)

func TestParseDateUTC(t *testing.T) {
	parsed, err := ParseDateUTC("2024-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("expected %v, got %v", want, parsed)
	}

	if _, err := ParseDateUTC("10-03-2024"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	if _, err := ParseDateUTC("2024-03-10T12:00:00Z"); err == nil {
		t.Fatal("expected error for timestamp input")
	}
}

// The parse result must not depend on the process-local timezone: the same
// literal string normalizes to the same instant whether the server runs in
// UTC-8 or UTC+5.
func TestParseDateUTC_ProcessTimezoneIndependent(t *testing.T) {
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, zone := range []*time.Location{
		time.FixedZone("UTC-8", -8*3600),
		time.FixedZone("UTC+5", 5*3600),
	} {
		original := time.Local
		time.Local = zone
		parsed, err := ParseDateUTC("2024-03-10")
		time.Local = original

		if err != nil {
			t.Fatalf("zone %v: unexpected error: %v", zone, err)
		}
		if !parsed.Equal(want) {
			t.Fatalf("zone %v: expected %v, got %v", zone, want, parsed)
		}
	}
}

func TestNormalizeDateUTC(t *testing.T) {
	// time-of-day stripped
	got := NormalizeDateUTC(time.Date(2024, 3, 10, 18, 45, 12, 999, time.UTC))
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// the calendar day is the UTC reading of the instant
	late := time.Date(2024, 3, 10, 22, 0, 0, 0, time.FixedZone("UTC-8", -8*3600))
	got = NormalizeDateUTC(late)
	want = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBusinessToday(t *testing.T) {
	// 20:30 UTC has rolled past midnight in IST (UTC+5:30)
	now := time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)
	got := BusinessToday(now)
	want := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// midday is the same calendar day in both zones
	now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	got = BusinessToday(now)
	want = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDateKey(t *testing.T) {
	if key := DateKey(time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)); key != "2024-03-10" {
		t.Fatalf("expected 2024-03-10, got %s", key)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	if !SameDate(a, b) {
		t.Fatal("expected same calendar date")
	}
	if SameDate(a, b.AddDate(0, 0, 1)) {
		t.Fatal("expected different calendar dates")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestFormatScheduleCode(t *testing.T) {
	cases := map[int]string{
		1:     "SCHE0001",
		42:    "SCHE0042",
		9999:  "SCHE9999",
		10000: "SCHE10000",
	}
	for code, want := range cases {
		if got := FormatScheduleCode(code); got != want {
			t.Fatalf("code %d: expected %s, got %s", code, want, got)
		}
	}
}
