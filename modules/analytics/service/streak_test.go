package service

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = day(s)
	}
	return out
}

func TestCalcStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		today       time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "three consecutive days ending today",
			dates:       days("2024-01-01", "2024-01-02", "2024-01-03"),
			today:       day("2024-01-03"),
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "four day gap breaks the run",
			dates:       days("2024-01-01", "2024-01-05"),
			today:       day("2024-01-05"),
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "stale last date zeroes current",
			dates:       days("2024-01-01", "2024-01-02", "2024-01-03"),
			today:       day("2024-01-10"),
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name:        "last date yesterday still counts",
			dates:       days("2024-01-02", "2024-01-03"),
			today:       day("2024-01-04"),
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "longest run in the middle",
			dates:       days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-10"),
			today:       day("2024-01-10"),
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name:        "unsorted input is sorted first",
			dates:       days("2024-01-03", "2024-01-01", "2024-01-02"),
			today:       day("2024-01-03"),
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "duplicate days collapse",
			dates:       days("2024-01-01", "2024-01-01", "2024-01-02"),
			today:       day("2024-01-02"),
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "empty input",
			dates:       nil,
			today:       day("2024-01-01"),
			wantCurrent: 0,
			wantLongest: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := CalcStreaks(tt.dates, tt.today)
			if current != tt.wantCurrent || longest != tt.wantLongest {
				t.Errorf("CalcStreaks() = (%d, %d), want (%d, %d)",
					current, longest, tt.wantCurrent, tt.wantLongest)
			}
			if longest < current {
				t.Errorf("longest %d < current %d", longest, current)
			}
		})
	}
}

func TestCalcStreaksIdempotent(t *testing.T) {
	dates := days("2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05", "2024-01-06")
	today := day("2024-01-06")

	c1, l1 := CalcStreaks(dates, today)
	c2, l2 := CalcStreaks(dates, today)
	if c1 != c2 || l1 != l2 {
		t.Errorf("second run (%d, %d) differs from first (%d, %d)", c2, l2, c1, l1)
	}
}
