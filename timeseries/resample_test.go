package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"monday stays",
			time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), // a Monday
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"wednesday truncates back",
			time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the preceding monday",
			time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResampleWeekly(t *testing.T) {
	// Two observations in week one, one in week three, nothing in week two.
	times := []time.Time{
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
	}
	values := []float64{10, 20, 30}

	s, err := ResampleWeekly(times, values, "cat")
	if err != nil {
		t.Fatalf("ResampleWeekly failed: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("length = %d, want 3 weeks", s.Len())
	}
	if s.Values[0] != 15 {
		t.Errorf("week 1 mean = %f, want 15", s.Values[0])
	}
	if !math.IsNaN(s.Values[1]) {
		t.Errorf("empty week should be NaN, got %f", s.Values[1])
	}
	if s.Values[2] != 30 {
		t.Errorf("week 3 = %f, want 30", s.Values[2])
	}

	// One row per calendar week, strictly increasing, no duplicates.
	for i := 1; i < s.Len(); i++ {
		if got := s.Timestamps[i].Sub(s.Timestamps[i-1]); got != 7*24*time.Hour {
			t.Errorf("week step %d = %v", i, got)
		}
	}
	if !s.Timestamps[0].Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("range should start at the first observed week, got %v", s.Timestamps[0])
	}
}

func TestResampleWeeklyUnsortedInput(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	s, err := ResampleWeekly(times, []float64{5, 3}, "cat")
	if err != nil {
		t.Fatalf("ResampleWeekly failed: %v", err)
	}
	if s.Values[0] != 3 {
		t.Errorf("first week = %f, want 3", s.Values[0])
	}
	if s.Values[s.Len()-1] != 5 {
		t.Errorf("last week = %f, want 5", s.Values[s.Len()-1])
	}
}

func TestResampleWeeklyErrors(t *testing.T) {
	if _, err := ResampleWeekly(nil, nil, "x"); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ResampleWeekly([]time.Time{time.Now()}, []float64{math.NaN()}, "x"); err == nil {
		t.Error("expected error when every value is missing")
	}
	if _, err := ResampleWeekly([]time.Time{time.Now()}, []float64{1, 2}, "x"); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestWeeksAfter(t *testing.T) {
	last := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	weeks := WeeksAfter(last, 3)

	if len(weeks) != 3 {
		t.Fatalf("got %d weeks", len(weeks))
	}
	for i, w := range weeks {
		want := last.AddDate(0, 0, 7*(i+1))
		if !w.Equal(want) {
			t.Errorf("weeks[%d] = %v, want %v", i, w, want)
		}
	}
}
