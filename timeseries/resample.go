package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"
)

// WeekStart truncates t to the Monday 00:00 UTC of its calendar week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ResampleWeekly aggregates irregular observations into calendar-week
// buckets using mean aggregation. The result has exactly one point per week
// from the first observed week through the last; weeks without observations
// are NaN. NaN input values are ignored.
func ResampleWeekly(times []time.Time, values []float64, name string) (*Series, error) {
	if len(times) != len(values) {
		return nil, errors.New("times and values must have the same length")
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for i, t := range times {
		if math.IsNaN(values[i]) {
			continue
		}
		w := WeekStart(t)
		sums[w] += values[i]
		counts[w]++
	}
	if len(counts) == 0 {
		return nil, errors.New("no valid observations to resample")
	}

	weeks := make([]time.Time, 0, len(counts))
	for w := range counts {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	first, last := weeks[0], weeks[len(weeks)-1]
	var timestamps []time.Time
	var out []float64
	for w := first; !w.After(last); w = w.AddDate(0, 0, 7) {
		timestamps = append(timestamps, w)
		if c := counts[w]; c > 0 {
			out = append(out, sums[w]/float64(c))
		} else {
			out = append(out, math.NaN())
		}
	}

	return &Series{Timestamps: timestamps, Values: out, Name: name}, nil
}

// WeeksAfter returns n weekly timestamps starting one week after t.
func WeeksAfter(t time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = t.AddDate(0, 0, 7*(i+1))
	}
	return out
}
