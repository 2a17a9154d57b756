package stats

import (
	"math"

	"github.com/sartorproj/pricecast/timeseries"
)

// LjungBoxResult holds the outcome of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox tests model residuals for remaining autocorrelation up to the
// given lag. The null hypothesis is no autocorrelation; a p-value below
// SignificanceLevel suggests the model has not captured all the structure.
// fitdf is the number of parameters estimated by the model (p+q for ARIMA).
func LjungBox(series *timeseries.Series, lags, fitdf int) *LjungBoxResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	pValue := 1 - chiSquaredCDF(q, dof)

	return &LjungBoxResult{Statistic: q, PValue: pValue, Lags: lags, DOF: dof}
}

// chiSquaredCDF evaluates the chi-squared CDF with k degrees of freedom
// as the regularized lower incomplete gamma P(k/2, x/2).
func chiSquaredCDF(x float64, k int) float64 {
	if x < 0 {
		return 0
	}
	return lowerIncompleteGamma(float64(k)/2, x/2) / gammaFn(float64(k)/2)
}

// gammaFn evaluates the gamma function via the Lanczos approximation.
func gammaFn(z float64) float64 {
	if z < 0.5 {
		return math.Pi / (math.Sin(math.Pi*z) * gammaFn(1-z))
	}

	z--
	g := 7
	c := []float64{
		0.99999999999980993,
		676.5203681218851,
		-1259.1392167224028,
		771.32342877765313,
		-176.61502916214059,
		12.507343278686905,
		-0.13857109526572012,
		9.9843695780195716e-6,
		1.5056327351493116e-7,
	}

	x := c[0]
	for i := 1; i < g+2; i++ {
		x += c[i] / (z + float64(i))
	}

	t := z + float64(g) + 0.5
	return math.Sqrt(2*math.Pi) * math.Pow(t, z+0.5) * math.Exp(-t) * x
}

// lowerIncompleteGamma evaluates the lower incomplete gamma function by
// series expansion.
func lowerIncompleteGamma(a, x float64) float64 {
	if x < 0 || a <= 0 {
		return 0
	}
	if x == 0 {
		return 0
	}

	sum := 0.0
	term := 1.0 / a
	for n := 0; n < 200; n++ {
		sum += term
		term *= x / (a + float64(n) + 1)
		if math.Abs(term) < 1e-15 {
			break
		}
	}
	return sum * math.Exp(-x+a*math.Log(x))
}
