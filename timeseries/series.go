package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Series is a date-indexed sequence of values. Timestamps and Values are
// parallel slices; timestamps are strictly increasing. A NaN value marks a
// missing observation.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from parallel timestamp and value slices. It returns
// an error if the slices differ in length or the timestamps are not strictly
// increasing.
func New(timestamps []time.Time, values []float64, name string) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, errors.New("timestamps must be strictly increasing")
		}
	}
	return &Series{Timestamps: timestamps, Values: values, Name: name}, nil
}

// Len returns the number of points in the series, missing or not.
func (s *Series) Len() int {
	return len(s.Values)
}

// Valid returns the number of non-missing points.
func (s *Series) Valid() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// validValues returns the non-missing values in order.
func (s *Series) validValues() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean returns the arithmetic mean of the non-missing values, or NaN for an
// all-missing series.
func (s *Series) Mean() float64 {
	vals := s.validValues()
	if len(vals) == 0 {
		return math.NaN()
	}
	return stat.Mean(vals, nil)
}

// Std returns the sample standard deviation of the non-missing values.
func (s *Series) Std() float64 {
	vals := s.validValues()
	if len(vals) < 2 {
		return 0
	}
	return stat.StdDev(vals, nil)
}

// Min returns the smallest non-missing value, or NaN if there is none.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest non-missing value, or NaN if there is none.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Start returns the first timestamp. The series must be non-empty.
func (s *Series) Start() time.Time {
	return s.Timestamps[0]
}

// End returns the last timestamp. The series must be non-empty.
func (s *Series) End() time.Time {
	return s.Timestamps[len(s.Timestamps)-1]
}

// Diff returns the first difference of the series. The result has one fewer
// point; its timestamps start at the second timestamp of the input.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Name: s.Name + "_diff"}
	}
	values := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		values[i-1] = s.Values[i] - s.Values[i-1]
	}
	var timestamps []time.Time
	if len(s.Timestamps) == len(s.Values) {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[1:])
	}
	return &Series{Timestamps: timestamps, Values: values, Name: s.Name + "_diff"}
}

// Slice returns a copy of the series restricted to [start, end).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}
	values := make([]float64, end-start)
	copy(values, s.Values[start:end])
	var timestamps []time.Time
	if len(s.Timestamps) == len(s.Values) {
		timestamps = make([]time.Time, end-start)
		copy(timestamps, s.Timestamps[start:end])
	}
	return &Series{Timestamps: timestamps, Values: values, Name: s.Name}
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	return s.Slice(0, len(s.Values))
}

// ForwardFill replaces each missing value with the last prior valid value.
// Missing values before the first valid value are left as NaN.
func (s *Series) ForwardFill() *Series {
	out := s.Copy()
	last := math.NaN()
	for i, v := range out.Values {
		if math.IsNaN(v) {
			if !math.IsNaN(last) {
				out.Values[i] = last
			}
			continue
		}
		last = v
	}
	return out
}

// DropLeadingNaN removes any missing values at the head of the series.
func (s *Series) DropLeadingNaN() *Series {
	i := 0
	for i < len(s.Values) && math.IsNaN(s.Values[i]) {
		i++
	}
	return s.Slice(i, len(s.Values))
}
