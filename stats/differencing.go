package stats

import (
	"math"

	"github.com/sartorproj/pricecast/timeseries"
)

// EnsureStationary applies the pipeline's fixed differencing policy: run an
// ADF test on the series and, when the p-value exceeds SignificanceLevel,
// return the first difference (one fewer point). At most one difference is
// taken. The returned flag reports whether differencing was applied; the
// ADF result describes the input series and may be nil when the series is
// too short to test, in which case the series is returned unchanged.
func EnsureStationary(series *timeseries.Series) (*timeseries.Series, *ADFResult, bool) {
	res := ADF(series, 0)
	if res == nil {
		return series, nil, false
	}
	if res.PValue > SignificanceLevel {
		return series.Diff(), res, true
	}
	return series, res, false
}

// NDiffs determines the number of first differences required for
// stationarity using repeated ADF tests, capped at maxD. Used by the order
// search to pick d.
func NDiffs(series *timeseries.Series, maxD int) int {
	if maxD <= 0 {
		maxD = 2
	}
	current := series
	for d := 0; d < maxD; d++ {
		res := ADF(current, 0)
		if res != nil && res.IsStationary {
			return d
		}
		current = current.Diff()
		if current.Len() < 10 {
			return d
		}
	}
	return maxD
}

// InformationCriteria holds the model selection criteria for a fit.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// CalculateIC derives AIC, AICc, and BIC from a Gaussian log-likelihood.
// nObs is the number of observations and nParams the number of estimated
// parameters. AICc is infinite when the sample is too small to correct.
func CalculateIC(logLik float64, nObs, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	aicc := math.Inf(1)
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	}

	return &InformationCriteria{AIC: aic, AICc: aicc, BIC: bic, LogLik: logLik}
}
