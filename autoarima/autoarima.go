package autoarima

import (
	"errors"
	"math"

	"github.com/sartorproj/pricecast/arima"
	"github.com/sartorproj/pricecast/stats"
	"github.com/sartorproj/pricecast/timeseries"
)

// ErrNoModel is returned when every candidate order fails to fit.
var ErrNoModel = errors.New("autoarima: no candidate model could be fitted")

// Criterion selects the information criterion driving the search.
type Criterion string

const (
	AIC  Criterion = "aic"
	AICc Criterion = "aicc"
	BIC  Criterion = "bic"
)

// Config bounds the stepwise search.
type Config struct {
	MaxP      int
	MaxQ      int
	MaxD      int
	Criterion Criterion
}

// DefaultConfig returns the search bounds used by the pricing pipeline.
func DefaultConfig() *Config {
	return &Config{MaxP: 5, MaxQ: 5, MaxD: 2, Criterion: AICc}
}

// Result is the outcome of an order search.
type Result struct {
	Order           arima.Order
	Model           *arima.Model
	Criterion       float64
	ModelsEvaluated int
}

// Predict forwards to the selected model.
func (r *Result) Predict(steps int) ([]float64, error) {
	return r.Model.Predict(steps)
}

// Search selects the best ARIMA order for the series. The differencing
// order d is chosen by repeated ADF tests, then a stepwise walk over (p,q)
// minimizes the configured criterion. Fit failures of individual candidates
// are ignored; ErrNoModel is returned only if nothing fits.
func Search(series *timeseries.Series, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}

	d := stats.NDiffs(series, config.MaxD)

	type spec struct{ p, q int }

	criterion := func(m *arima.Model) float64 {
		switch config.Criterion {
		case BIC:
			return m.IC.BIC
		case AIC:
			return m.IC.AIC
		default:
			return m.IC.AICc
		}
	}

	best := (*arima.Model)(nil)
	bestSpec := spec{}
	bestCriterion := math.Inf(1)
	evaluated := 0

	try := func(s spec) bool {
		if s.p < 0 || s.p > config.MaxP || s.q < 0 || s.q > config.MaxQ {
			return false
		}
		model := arima.New(arima.Order{P: s.p, D: d, Q: s.q})
		if err := model.Fit(series); err != nil {
			// Candidates that fail to fit are skipped.
			return false
		}
		evaluated++
		if c := criterion(model); c < bestCriterion {
			bestCriterion = c
			bestSpec = s
			best = model
			return true
		}
		return false
	}

	for _, s := range []spec{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}} {
		try(s)
	}
	if best == nil {
		return nil, ErrNoModel
	}

	improved := true
	for improved {
		improved = false
		neighbors := []spec{
			{bestSpec.p + 1, bestSpec.q},
			{bestSpec.p - 1, bestSpec.q},
			{bestSpec.p, bestSpec.q + 1},
			{bestSpec.p, bestSpec.q - 1},
			{bestSpec.p + 1, bestSpec.q + 1},
			{bestSpec.p - 1, bestSpec.q - 1},
		}
		for _, s := range neighbors {
			if try(s) {
				improved = true
			}
		}
	}

	return &Result{
		Order:           best.Order,
		Model:           best,
		Criterion:       bestCriterion,
		ModelsEvaluated: evaluated,
	}, nil
}
