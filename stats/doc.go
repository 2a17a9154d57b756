// Package stats provides the statistical tests behind the pipeline:
// the augmented Dickey-Fuller stationarity test, autocorrelation functions,
// the Ljung-Box residual diagnostic, and the fixed differencing policy
// applied to weekly price series.
package stats
