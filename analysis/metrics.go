package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrForecastMisaligned is returned when actuals and forecasts differ in
// length. Metrics never silently truncates to the shorter input.
var ErrForecastMisaligned = errors.New("actuals and forecasts are not aligned")

// Metrics computes the mean absolute error and root-mean-squared error
// between aligned actual and forecast values.
func Metrics(actual, forecast []float64) (mae, rmse float64, err error) {
	if len(actual) != len(forecast) {
		return 0, 0, fmt.Errorf("%w: %d actuals vs %d forecasts",
			ErrForecastMisaligned, len(actual), len(forecast))
	}
	if len(actual) == 0 {
		return 0, 0, fmt.Errorf("%w: empty inputs", ErrForecastMisaligned)
	}

	for i := range actual {
		d := actual[i] - forecast[i]
		mae += math.Abs(d)
		rmse += d * d
	}
	n := float64(len(actual))
	return mae / n, math.Sqrt(rmse / n), nil
}
