package repository

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	// a Saturday
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	t.Run("all is unbounded", func(t *testing.T) {
		for _, p := range []string{"", "all", "ALL"} {
			from, to, err := PeriodRange(p, now)
			if err != nil || from != nil || to != nil {
				t.Fatalf("period %q: from=%v to=%v err=%v", p, from, to, err)
			}
		}
	})

	t.Run("today is a single inclusive day", func(t *testing.T) {
		from, to, err := PeriodRange("today", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		if !from.Equal(want) || !to.Equal(want) {
			t.Fatalf("from = %v, to = %v, want both %v", from, to, want)
		}
	})

	t.Run("week starts on monday", func(t *testing.T) {
		from, to, err := PeriodRange("week", now)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("from = %v, want %v", from, want)
		}
		if want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
			t.Fatalf("to = %v, want %v", to, want)
		}
	})

	t.Run("sunday belongs to the previous monday's week", func(t *testing.T) {
		sunday := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
		from, _, err := PeriodRange("week", sunday)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("from = %v, want %v", from, want)
		}
	})

	t.Run("month starts on the first", func(t *testing.T) {
		from, _, err := PeriodRange("month", now)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("from = %v, want %v", from, want)
		}
	})

	t.Run("6months reaches half a year back", func(t *testing.T) {
		from, _, err := PeriodRange("6months", now)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("from = %v, want %v", from, want)
		}
	})

	t.Run("year starts in january", func(t *testing.T) {
		from, _, err := PeriodRange("year", now)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("from = %v, want %v", from, want)
		}
	})

	t.Run("unknown period errors", func(t *testing.T) {
		if _, _, err := PeriodRange("fortnight", now); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestNextReset(t *testing.T) {
	start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   time.Time
	}{
		{"WEEKLY", time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)},
		{"MONTHLY", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}, // Jan 31 + 1 month normalizes
		{"YEARLY", time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"monthly", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}, // case-insensitive
	}
	for _, tc := range cases {
		got, err := NextReset(tc.period, start)
		if err != nil {
			t.Fatalf("%s: %v", tc.period, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.period, got, tc.want)
		}
	}

	if _, err := NextReset("DAILY", start); err == nil {
		t.Fatal("expected error for unknown period type")
	}
}
