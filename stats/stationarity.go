package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/pricecast/timeseries"
)

// SignificanceLevel is the fixed ADF rejection threshold used by the
// pipeline's differencing policy.
const SignificanceLevel = 0.05

// ADFResult holds the outcome of an augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64
	IsStationary bool
}

// ADF performs the augmented Dickey-Fuller unit-root test with a constant
// term. The null hypothesis is that the series has a unit root; a p-value
// below SignificanceLevel rejects the null. With maxLag <= 0 the lag order
// defaults to floor((n-1)^(1/3)). Returns nil when the series is too short
// or the regression is degenerate.
func ADF(series *timeseries.Series, maxLag int) *ADFResult {
	n := series.Len()
	if n < 10 {
		return nil
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := series.Diff()

	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil
	}

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum gamma_i*delta_y_{t-i}.
	// The test statistic is the t-stat on beta.
	y := make([]float64, nObs)
	x := make([][]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = diff.Values[t]
		row := make([]float64, 2+maxLag)
		row[0] = 1
		row[1] = series.Values[t]
		for j := 1; j <= maxLag; j++ {
			row[1+j] = diff.Values[t-j]
		}
		x[i] = row
	}

	coeffs, se := olsRegression(x, y)
	if coeffs == nil || se == nil || se[1] == 0 {
		return nil
	}

	tStat := coeffs[1] / se[1]
	pValue := mackinnonPValue(tStat)

	return &ADFResult{
		Statistic: tStat,
		PValue:    pValue,
		Lags:      maxLag,
		NObs:      nObs,
		CriticalVals: map[string]float64{
			"1%":  -3.43,
			"5%":  -2.86,
			"10%": -2.57,
		},
		IsStationary: pValue < SignificanceLevel,
	}
}

// olsRegression fits y = X*beta by least squares and returns the
// coefficients and their standard errors. Returns nils when X'X is singular
// or there are too few observations.
func olsRegression(x [][]float64, y []float64) (coeffs, stdErrors []float64) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, nil
	}
	k := len(x[0])
	if n <= k {
		return nil, nil
	}

	X := mat.NewDense(n, k, nil)
	for i, row := range x {
		X.SetRow(i, row)
	}
	Y := mat.NewVecDense(n, y)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), Y)
	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	coeffs = make([]float64, k)
	for i := range coeffs {
		coeffs[i] = beta.AtVec(i)
	}

	sse := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coeffs[j] * x[i][j]
		}
		r := y[i] - pred
		sse += r * r
	}
	s2 := sse / float64(n-k)

	stdErrors = make([]float64, k)
	for i := range stdErrors {
		stdErrors[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}
	return coeffs, stdErrors
}

// mackinnonPValue approximates the ADF p-value from the test statistic
// using the MacKinnon (1994) critical values for a constant-only
// regression. The approximation is a step table: a statistic between two
// critical values reports the plateau p of its band, so anything in
// [-3.43, -2.86) comes back as exactly 0.05 and sits on the boundary of
// the p > 0.05 differencing rule (not differenced, not reported
// stationary).
func mackinnonPValue(stat float64) float64 {
	switch {
	case stat < -3.96:
		return 0.001
	case stat < -3.43:
		return 0.01
	case stat < -2.86:
		return 0.05
	case stat < -2.57:
		return 0.10
	case stat < -1.94:
		return 0.25
	case stat < -1.62:
		return 0.50
	default:
		return math.Min(0.5+(stat+1.62)*0.25, 0.99)
	}
}
