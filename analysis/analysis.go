package analysis

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/pricecast/arima"
	"github.com/sartorproj/pricecast/autoarima"
	"github.com/sartorproj/pricecast/stats"
	"github.com/sartorproj/pricecast/timeseries"
)

// Fixed pipeline thresholds. These are part of the analysis contract, not
// configuration.
const (
	// MinWeeklyObs is the minimum number of observed weekly points a
	// category needs to be analyzed. The gate counts weeks that had real
	// observations, before forward filling.
	MinWeeklyObs = 20
	// TrainFraction and ValidationFraction define the chronological split;
	// the remainder, including floor rounding, is the test window.
	TrainFraction      = 0.70
	ValidationFraction = 0.15
	// FutureHorizon is the number of weeks forecast past the series end.
	FutureHorizon = 12
	// TopCategories is how many categories, ranked by observation count,
	// the pipeline analyzes.
	TopCategories = 5
)

// Scale labels for the modeled series. When the series was differenced the
// model, metrics, and chart payloads live on the weekly-price-change scale.
// The recommendation itself always compares price levels.
const (
	ScaleLevel  = "price level"
	ScaleChange = "weekly price change"
)

// Recommendation texts for the two-branch trend rule.
const (
	RecommendIncrease = "increase inventory and postpone discounts"
	RecommendPromote  = "promote sales and schedule discounts"
)

// Skip explains why a category was not analyzed.
type Skip struct {
	Reason       string
	Observations int
}

// Report holds the full result of one analyzed category.
type Report struct {
	Order           arima.Order
	ADF             *stats.ADFResult
	Differenced     bool
	Scale           string
	ModelsEvaluated int
	MAE             float64
	RMSE            float64

	// HistoricalMean and FutureMean are price levels regardless of
	// differencing; a differenced future forecast is integrated back from
	// the last observed level before averaging.
	HistoricalMean float64
	FutureMean     float64

	Recommendation string
	LjungBoxPValue float64

	// Working is the modeled series (forward filled and, when the ADF
	// p-value exceeded the threshold, first differenced).
	Working      *timeseries.Series
	Test         *timeseries.Series
	TestForecast []float64
	Future       *timeseries.Series
}

// Outcome is the result of analyzing one category. Exactly one of Skip and
// Report is set.
type Outcome struct {
	Category string
	Skip     *Skip
	Report   *Report
}

// Analyzed reports whether the outcome carries a full report.
func (o Outcome) Analyzed() bool {
	return o.Report != nil
}

// Analyze runs the pipeline for one category's weekly price series, as
// produced by timeseries.ResampleWeekly (missing weeks still NaN). A
// category below the observation gate yields a Skip outcome; a model
// failure is returned as an error and aborts the run.
func Analyze(category string, weekly *timeseries.Series) (Outcome, error) {
	if obs := weekly.Valid(); obs < MinWeeklyObs {
		log.Warn().
			Str("category", category).
			Int("weekly_observations", obs).
			Int("required", MinWeeklyObs).
			Msg("skipping category: insufficient weekly observations")
		return Outcome{
			Category: category,
			Skip: &Skip{
				Reason:       fmt.Sprintf("only %d weekly observations, need %d", obs, MinWeeklyObs),
				Observations: obs,
			},
		}, nil
	}

	filled := weekly.ForwardFill().DropLeadingNaN()

	working, adf, differenced := stats.EnsureStationary(filled)
	scale := ScaleLevel
	if differenced {
		scale = ScaleChange
	}

	split := working.Split(TrainFraction, ValidationFraction)

	search, err := autoarima.Search(split.Train, autoarima.DefaultConfig())
	if err != nil {
		return Outcome{}, fmt.Errorf("order search for %q: %w", category, err)
	}

	refit := arima.New(search.Order)
	if err := refit.Fit(split.TrainValidation()); err != nil {
		return Outcome{}, fmt.Errorf("refit for %q: %w", category, err)
	}

	testLen := split.Test.Len()
	forecasts, err := refit.Predict(testLen + FutureHorizon)
	if err != nil {
		return Outcome{}, fmt.Errorf("forecast for %q: %w", category, err)
	}
	testForecast := forecasts[:testLen]
	futureValues := forecasts[testLen:]

	mae, rmse, err := Metrics(split.Test.Values, testForecast)
	if err != nil {
		return Outcome{}, fmt.Errorf("metrics for %q: %w", category, err)
	}

	future := &timeseries.Series{
		Timestamps: timeseries.WeeksAfter(filled.End(), FutureHorizon),
		Values:     futureValues,
		Name:       category + "_future",
	}

	// The trend rule compares price levels. A trend that was differenced
	// away leaves both change means near the slope, so the future forecast
	// is integrated back from the last observed level first.
	futureLevels := futureValues
	if differenced {
		futureLevels = make([]float64, len(futureValues))
		level := filled.Values[filled.Len()-1]
		for i, change := range futureValues {
			level += change
			futureLevels[i] = level
		}
	}

	historicalMean := filled.Mean()
	futureMean := stat.Mean(futureLevels, nil)

	recommendation := RecommendPromote
	if futureMean > historicalMean {
		recommendation = RecommendIncrease
	}

	ljungBoxP := 0.0
	if summary := refit.Summary(); summary != nil && summary.LjungBox != nil {
		ljungBoxP = summary.LjungBox.PValue
	}

	return Outcome{
		Category: category,
		Report: &Report{
			Order:           search.Order,
			ADF:             adf,
			Differenced:     differenced,
			Scale:           scale,
			ModelsEvaluated: search.ModelsEvaluated,
			MAE:             mae,
			RMSE:            rmse,
			HistoricalMean:  historicalMean,
			FutureMean:      futureMean,
			Recommendation:  recommendation,
			LjungBoxPValue:  ljungBoxP,
			Working:         working,
			Test:            split.Test,
			TestForecast:    testForecast,
			Future:          future,
		},
	}, nil
}
