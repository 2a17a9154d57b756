// Package arima implements non-seasonal ARIMA(p,d,q) models fitted by
// conditional sum of squares, with h-step forecasting that integrates
// differenced predictions back to the original scale.
package arima
