package stats

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/pricecast/timeseries"
)

func indexedSeries(t *testing.T, values []float64) *timeseries.Series {
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

// levelSeries builds white noise around a fixed level.
func levelSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + noise(i)*4
	}
	return values
}

// trendSeries builds a clear linear trend plus noise.
func trendSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)*0.5 + noise(i)*2
	}
	return values
}

func TestACF(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = 0.8*values[i-1] + noise(i)
	}

	acf := ACF(indexedSeries(t, values), 10)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	if len(acf) != 11 {
		t.Fatalf("ACF length = %d, want 11", len(acf))
	}
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 = %f, want 1", acf[0])
	}
	// AR(1) with positive coefficient has positive first autocorrelation.
	if acf[1] < 0.3 {
		t.Errorf("ACF at lag 1 = %f, expected clearly positive", acf[1])
	}
}

func TestACFConstantSeries(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5, 5}
	if acf := ACF(indexedSeries(t, values), 3); acf != nil {
		t.Errorf("ACF on constant series = %v, want nil", acf)
	}
}

func TestADFTrendingIsNonStationary(t *testing.T) {
	result := ADF(indexedSeries(t, trendSeries(200)), 0)
	if result == nil {
		t.Fatal("ADF returned nil")
	}

	t.Logf("trend: statistic=%f p=%f", result.Statistic, result.PValue)
	if result.PValue <= SignificanceLevel {
		t.Errorf("trending series should not reject the unit root, p=%f", result.PValue)
	}
	if result.IsStationary {
		t.Error("trending series reported stationary")
	}
}

func TestADFLevelIsStationary(t *testing.T) {
	result := ADF(indexedSeries(t, levelSeries(200)), 0)
	if result == nil {
		t.Fatal("ADF returned nil")
	}

	t.Logf("level: statistic=%f p=%f", result.Statistic, result.PValue)
	if !result.IsStationary {
		t.Errorf("noise around a level should reject the unit root, p=%f", result.PValue)
	}
	if result.IsStationary != (result.PValue < SignificanceLevel) {
		t.Error("IsStationary disagrees with the p-value")
	}
}

func TestADFShortSeries(t *testing.T) {
	if result := ADF(indexedSeries(t, []float64{1, 2, 3}), 0); result != nil {
		t.Error("ADF should return nil for a short series")
	}
}

func TestLjungBox(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := range values {
		values[i] = noise(i) * 10
	}

	result := LjungBox(indexedSeries(t, values), 10, 2)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("p-value out of range: %f", result.PValue)
	}
	if result.DOF != 8 {
		t.Errorf("DOF = %d, want 8", result.DOF)
	}
}

func TestChiSquaredCDF(t *testing.T) {
	tests := []struct {
		x    float64
		k    int
		want float64
	}{
		{0, 1, 0},
		{3.841, 1, 0.95},
		{5.991, 2, 0.95},
	}
	for _, tt := range tests {
		got := chiSquaredCDF(tt.x, tt.k)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("chiSquaredCDF(%f, %d) = %f, want %f", tt.x, tt.k, got, tt.want)
		}
	}
}
