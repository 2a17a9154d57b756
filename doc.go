// Package pricecast forecasts electronics product prices per category.
//
// pricecast is a one-shot batch pipeline over a product-pricing CSV export:
// it cleans the raw price sightings, aggregates average prices into weekly
// series for the most observed product categories, fits an automatically
// selected non-seasonal ARIMA model per category, evaluates forecast
// accuracy on a held-out test window, and turns the 12-week outlook into a
// qualitative pricing recommendation.
//
// # Pipeline
//
// For each of the top categories by observation count:
//
//	load -> clean -> weekly resample -> ADF test -> (difference) ->
//	70/15/15 split -> stepwise order search on train ->
//	refit on train+validation -> forecast test horizon and 12 weeks ahead ->
//	MAE/RMSE -> recommendation
//
// Categories with fewer than 20 observed weekly points are skipped and
// excluded from the summary table.
//
// # Packages
//
//   - dataset: CSV ingestion, cleaning, category grouping and ranking
//   - timeseries: date-indexed series, weekly resampling, splitting
//   - stats: stationarity testing and autocorrelation diagnostics
//   - arima: non-seasonal ARIMA estimation and forecasting
//   - autoarima: stepwise automatic order selection
//   - analysis: the per-category pipeline and its fixed thresholds
//   - report: console report, summary table, and chart payload export
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package pricecast
