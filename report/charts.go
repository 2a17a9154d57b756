package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/sartorproj/pricecast/analysis"
	"github.com/sartorproj/pricecast/timeseries"
)

// Point is one chart data point. Missing values are encoded as null.
type Point struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// ForecastChart pairs test-window actuals with their forecasts.
type ForecastChart struct {
	Dates    []string  `json:"dates"`
	Actual   []float64 `json:"actual"`
	Forecast []float64 `json:"forecast"`
}

// CategoryCharts holds the three chart payloads for one analyzed category:
// the weekly series, forecast vs actual over the test window, and the
// 12-week future forecast.
type CategoryCharts struct {
	Category         string        `json:"category"`
	Scale            string        `json:"scale"`
	Weekly           []Point       `json:"weekly"`
	ForecastVsActual ForecastChart `json:"forecast_vs_actual"`
	Future           []Point       `json:"future"`
}

// ChartSet is the full chart export for one run.
type ChartSet struct {
	GeneratedAt string           `json:"generated_at"`
	Categories  []CategoryCharts `json:"categories"`
}

// BuildCharts assembles chart payloads from the analyzed outcomes. Skipped
// categories produce no charts.
func BuildCharts(outcomes []analysis.Outcome) *ChartSet {
	set := &ChartSet{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, o := range outcomes {
		if !o.Analyzed() {
			continue
		}
		rep := o.Report
		set.Categories = append(set.Categories, CategoryCharts{
			Category: o.Category,
			Scale:    rep.Scale,
			Weekly:   seriesPoints(rep.Working),
			ForecastVsActual: ForecastChart{
				Dates:    seriesDates(rep.Test),
				Actual:   rep.Test.Values,
				Forecast: rep.TestForecast,
			},
			Future: seriesPoints(rep.Future),
		})
	}
	return set
}

// WriteFile writes the chart payloads as indented JSON.
func (c *ChartSet) WriteFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode charts: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write charts: %w", err)
	}
	return nil
}

func seriesPoints(s *timeseries.Series) []Point {
	points := make([]Point, s.Len())
	for i, v := range s.Values {
		p := Point{Date: s.Timestamps[i].Format("2006-01-02")}
		if !math.IsNaN(v) {
			val := v
			p.Value = &val
		}
		points[i] = p
	}
	return points
}

func seriesDates(s *timeseries.Series) []string {
	dates := make([]string, s.Len())
	for i, t := range s.Timestamps {
		dates[i] = t.Format("2006-01-02")
	}
	return dates
}
