package arima

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/pricecast/timeseries"
)

func weeklySeries(t *testing.T, values []float64) *timeseries.Series {
	t.Helper()
	timestamps := make([]time.Time, len(values))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range timestamps {
		timestamps[i] = base.AddDate(0, 0, 7*i)
	}
	s, err := timeseries.New(timestamps, values, "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// noise returns a deterministic white-noise-like value in [-0.5, 0.5).
func noise(i int) float64 {
	x := math.Sin(float64(i)*12.9898) * 43758.5453
	return x - math.Floor(x) - 0.5
}

func ar1Series(n int, phi float64) []float64 {
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + noise(i)
	}
	return values
}

func TestOrderString(t *testing.T) {
	tests := []struct {
		order Order
		want  string
	}{
		{Order{0, 0, 0}, "(0,0,0)"},
		{Order{2, 1, 1}, "(2,1,1)"},
	}
	for _, tt := range tests {
		if got := tt.order.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOrderParams(t *testing.T) {
	if got := (Order{P: 2, D: 1, Q: 1}).Params(); got != 4 {
		t.Errorf("Params = %d, want 4 (AR + MA + intercept)", got)
	}
}

func TestFitWhiteNoise(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 20 + noise(i)
	}

	m := New(Order{P: 0, D: 0, Q: 0})
	if err := m.Fit(weeklySeries(t, values)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(m.Intercept-20) > 0.5 {
		t.Errorf("Intercept = %f, want roughly 20", m.Intercept)
	}
	if m.Variance <= 0 {
		t.Errorf("Variance = %f, want positive", m.Variance)
	}
	if m.IC == nil || math.IsInf(m.IC.AICc, 0) {
		t.Error("expected finite information criteria")
	}
}

func TestFitAR1RecoversSign(t *testing.T) {
	m := New(Order{P: 1, D: 0, Q: 0})
	if err := m.Fit(weeklySeries(t, ar1Series(200, 0.7))); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	t.Logf("phi estimate = %f", m.ARCoeffs[0])
	if m.ARCoeffs[0] < 0.3 || m.ARCoeffs[0] > 0.99 {
		t.Errorf("AR(1) coefficient = %f, want clearly positive", m.ARCoeffs[0])
	}
}

func TestFitInsufficientData(t *testing.T) {
	m := New(Order{P: 1, D: 0, Q: 1})
	if err := m.Fit(weeklySeries(t, []float64{1, 2, 3, 4, 5})); err == nil {
		t.Error("expected error for a short series")
	}
}

func TestPredictUnfitted(t *testing.T) {
	if _, err := New(Order{P: 1, D: 0, Q: 0}).Predict(5); err == nil {
		t.Error("expected error predicting with an unfitted model")
	}
}

func TestPredictSteps(t *testing.T) {
	m := New(Order{P: 1, D: 0, Q: 1})
	if err := m.Fit(weeklySeries(t, ar1Series(100, 0.5))); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	forecasts, err := m.Predict(8)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if len(forecasts) != 8 {
		t.Fatalf("got %d forecasts, want 8", len(forecasts))
	}
	for i, f := range forecasts {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("forecast[%d] = %f", i, f)
		}
	}

	if _, err := m.Predict(0); err == nil {
		t.Error("expected error for zero steps")
	}
}

func TestPredictIntegratesDifferencing(t *testing.T) {
	// Steady upward drift: a d=1 model should keep climbing from the
	// last observed level, not reset toward zero.
	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + 2*float64(i) + noise(i)
	}

	m := New(Order{P: 0, D: 1, Q: 0})
	if err := m.Fit(weeklySeries(t, values)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	forecasts, err := m.Predict(5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	last := values[len(values)-1]
	if forecasts[0] < last-5 {
		t.Errorf("first forecast %f fell far below last level %f", forecasts[0], last)
	}
	for i := 1; i < len(forecasts); i++ {
		if forecasts[i] <= forecasts[i-1] {
			t.Errorf("drift forecasts should keep increasing: %v", forecasts)
			break
		}
	}
}

func TestResidualsBeforeAndAfterFit(t *testing.T) {
	m := New(Order{P: 0, D: 0, Q: 0})
	if m.Residuals() != nil {
		t.Error("Residuals before fitting should be nil")
	}

	series := weeklySeries(t, ar1Series(40, 0.3))
	if err := m.Fit(series); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	resid := m.Residuals()
	if len(resid) != series.Len() {
		t.Fatalf("got %d residuals, want %d", len(resid), series.Len())
	}
	resid[0] = 1e9
	if r := m.Residuals(); r[0] == 1e9 {
		t.Error("Residuals must return a copy")
	}
}

func TestSummary(t *testing.T) {
	m := New(Order{P: 1, D: 0, Q: 0})
	if m.Summary() != nil {
		t.Error("Summary before fitting should be nil")
	}

	if err := m.Fit(weeklySeries(t, ar1Series(100, 0.6))); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	s := m.Summary()
	if s == nil {
		t.Fatal("Summary returned nil after fitting")
	}
	if s.NObs != 100 {
		t.Errorf("NObs = %d, want 100", s.NObs)
	}
	if s.LjungBox == nil {
		t.Error("expected a Ljung-Box diagnostic")
	}
}

func TestYuleWalker(t *testing.T) {
	// For an AR(1) process the ACF decays geometrically and the first
	// Yule-Walker coefficient equals the lag-1 autocorrelation.
	acf := []float64{1, 0.6, 0.36, 0.216}

	phi := yuleWalker(acf, 1)
	if phi == nil || math.Abs(phi[0]-0.6) > 1e-10 {
		t.Errorf("yuleWalker order 1 = %v, want [0.6]", phi)
	}

	phi = yuleWalker(acf, 2)
	if phi == nil {
		t.Fatal("yuleWalker order 2 returned nil")
	}
	if math.Abs(phi[1]) > 0.05 {
		t.Errorf("second coefficient = %f, want near zero for AR(1) data", phi[1])
	}

	if yuleWalker(acf, 5) != nil {
		t.Error("expected nil when the ACF is shorter than the order")
	}
}
