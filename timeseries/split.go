package timeseries

import (
	"math"
	"time"
)

// Split holds the chronological train/validation/test partitions of a
// series. The partitions are contiguous, non-overlapping, and together cover
// the whole input.
type Split struct {
	Train      *Series
	Validation *Series
	Test       *Series
}

// Split partitions the series chronologically. Train receives
// floor(trainFrac*N) points and validation floor(valFrac*N); the remainder,
// including any floor rounding, goes to test.
func (s *Series) Split(trainFrac, valFrac float64) Split {
	n := s.Len()
	trainSize := int(math.Floor(trainFrac * float64(n)))
	valSize := int(math.Floor(valFrac * float64(n)))
	return Split{
		Train:      s.Slice(0, trainSize),
		Validation: s.Slice(trainSize, trainSize+valSize),
		Test:       s.Slice(trainSize+valSize, n),
	}
}

// TrainValidation returns the train and validation partitions joined back
// into one contiguous series, used for refitting the selected model.
func (sp Split) TrainValidation() *Series {
	n := sp.Train.Len() + sp.Validation.Len()
	values := make([]float64, 0, n)
	values = append(values, sp.Train.Values...)
	values = append(values, sp.Validation.Values...)
	timestamps := make([]time.Time, 0, n)
	timestamps = append(timestamps, sp.Train.Timestamps...)
	timestamps = append(timestamps, sp.Validation.Timestamps...)
	return &Series{Timestamps: timestamps, Values: values, Name: sp.Train.Name}
}
