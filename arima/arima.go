package arima

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/pricecast/stats"
	"github.com/sartorproj/pricecast/timeseries"
)

// Order is an ARIMA model order (p,d,q).
type Order struct {
	P int // AR terms
	D int // differencing order
	Q int // MA terms
}

// String formats the order as "(p,d,q)".
func (o Order) String() string {
	return fmt.Sprintf("(%d,%d,%d)", o.P, o.D, o.Q)
}

// Params returns the number of estimated parameters (AR + MA + intercept).
func (o Order) Params() int {
	return o.P + o.Q + 1
}

// Model is a non-seasonal ARIMA model.
type Model struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	Variance  float64
	IC        *stats.InformationCriteria

	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// New creates an unfitted ARIMA model with the given order.
func New(order Order) *Model {
	return &Model{
		Order:    order,
		ARCoeffs: make([]float64, order.P),
		MACoeffs: make([]float64, order.Q),
	}
}

// Fit estimates the model on the given series by conditional sum of
// squares. The series must be long enough to support the order.
func (m *Model) Fit(series *timeseries.Series) error {
	if series.Len() < m.Order.P+m.Order.Q+m.Order.D+10 {
		return fmt.Errorf("arima%v: insufficient data (%d points)", m.Order, series.Len())
	}

	m.data = series

	diff := series
	for i := 0; i < m.Order.D; i++ {
		diff = diff.Diff()
		if diff.Len() == 0 {
			return errors.New("differencing produced an empty series")
		}
	}
	m.diffData = diff

	if err := m.fitCSS(); err != nil {
		return fmt.Errorf("arima%v: %w", m.Order, err)
	}

	n := len(m.residuals)
	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}
	logLik := math.Inf(-1)
	if m.Variance > 0 {
		logLik = -float64(n)/2*math.Log(2*math.Pi) -
			float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	}
	m.IC = stats.CalculateIC(logLik, n, m.Order.Params())

	m.fitted = true
	return nil
}

// fitCSS estimates the coefficients on the differenced series.
func (m *Model) fitCSS() error {
	y := m.diffData.Values
	n := len(y)
	p := m.Order.P
	q := m.Order.Q

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	m.Intercept = mean

	if p == 0 && q == 0 {
		// White noise around the mean.
		m.residuals = make([]float64, n)
		m.fittedVals = make([]float64, n)
		sse := 0.0
		for i, v := range y {
			m.fittedVals[i] = mean
			m.residuals[i] = v - mean
			sse += m.residuals[i] * m.residuals[i]
		}
		if n > 1 {
			m.Variance = sse / float64(n-1)
		}
		return nil
	}

	if p > 0 {
		if acf := stats.ACF(m.diffData, p); acf != nil {
			if phi := yuleWalker(acf, p); phi != nil {
				copy(m.ARCoeffs, phi)
			}
		}
	}
	for i := range m.MACoeffs {
		m.MACoeffs[i] = 0.1
	}

	m.refineCSS(y)
	return nil
}

// refineCSS iteratively improves the coefficients by gradient steps on the
// conditional sum of squares, with coefficients clamped to (-0.99, 0.99)
// for stationarity and invertibility.
func (m *Model) refineCSS(y []float64) {
	n := len(y)
	p := m.Order.P
	q := m.Order.Q

	const (
		maxIter      = 100
		tolerance    = 1e-6
		learningRate = 0.01
	)

	startIdx := p
	if q > startIdx {
		startIdx = q
	}

	predict := func(t int, residuals []float64) float64 {
		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0; i++ {
			pred += m.MACoeffs[i] * residuals[t-i-1]
		}
		return pred
	}

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		prevSSE := 0.0
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - predict(t, residuals)
			prevSSE += residuals[t] * residuals[t]
		}

		arGrad := make([]float64, p)
		maGrad := make([]float64, q)
		for t := startIdx; t < n; t++ {
			for i := 0; i < p && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
		}

		for i := 0; i < p; i++ {
			m.ARCoeffs[i] -= learningRate * arGrad[i] / float64(n)
			m.ARCoeffs[i] = math.Max(-0.99, math.Min(0.99, m.ARCoeffs[i]))
		}
		for i := 0; i < q; i++ {
			m.MACoeffs[i] -= learningRate * maGrad[i] / float64(n)
			m.MACoeffs[i] = math.Max(-0.99, math.Min(0.99, m.MACoeffs[i]))
		}

		newSSE := 0.0
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - predict(t, residuals)
			newSSE += residuals[t] * residuals[t]
		}

		if math.Abs(prevSSE-newSSE) < tolerance {
			break
		}
	}

	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)
	for t := 0; t < n; t++ {
		if t < startIdx {
			m.fittedVals[t] = m.Intercept
			m.residuals[t] = y[t] - m.Intercept
			continue
		}
		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0; i++ {
			pred += m.MACoeffs[i] * m.residuals[t-i-1]
		}
		m.fittedVals[t] = pred
		m.residuals[t] = y[t] - pred
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > p+q+1 {
		m.Variance = sse / float64(count-p-q-1)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}
}

// Predict produces forecasts for the given number of steps ahead, on the
// original (undifferenced) scale of the fitted series.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}

	p := m.Order.P
	q := m.Order.Q

	y := m.diffData.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		// Future residuals have expectation zero.
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResiduals[t-i-1]
		}
		extY[t] = pred
	}

	forecasts := extY[n:]
	if m.Order.D > 0 {
		forecasts = m.integrate(forecasts)
	}
	return forecasts, nil
}

// integrate undoes differencing so forecasts come back on the input scale.
func (m *Model) integrate(forecasts []float64) []float64 {
	original := m.data.Values

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	for i := 0; i < m.Order.D; i++ {
		lastVal := original[len(original)-1-i]
		for j := range result {
			if j == 0 {
				result[j] += lastVal
			} else {
				result[j] += result[j-1]
			}
		}
	}
	return result
}

// Residuals returns a copy of the fit residuals, or nil before fitting.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	out := make([]float64, len(m.residuals))
	copy(out, m.residuals)
	return out
}

// Summary describes a fitted model.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	Variance  float64
	IC        *stats.InformationCriteria
	NObs      int
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box
// residual diagnostic. Returns nil before fitting.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}
	resid := &timeseries.Series{Values: m.Residuals()}
	return &Summary{
		Order:     m.Order,
		ARCoeffs:  m.ARCoeffs,
		MACoeffs:  m.MACoeffs,
		Intercept: m.Intercept,
		Variance:  m.Variance,
		IC:        m.IC,
		NObs:      m.data.Len(),
		LjungBox:  stats.LjungBox(resid, 10, m.Order.P+m.Order.Q),
	}
}

// yuleWalker estimates AR coefficients from the ACF via Levinson-Durbin
// recursion.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}
	return phi
}
