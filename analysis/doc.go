// Package analysis runs the per-category forecasting pipeline: the minimum
// observation gate, the stationarity and differencing policy, the
// chronological 70/15/15 split, automatic order selection on the training
// window, the refit on train+validation, the test and 12-week forecasts,
// error metrics, and the pricing recommendation.
//
// Analyze is a pure function from a category's weekly series to an Outcome;
// the caller loops over categories and aggregates the outcomes.
package analysis
