// Package autoarima selects an ARIMA order automatically. The search is
// non-seasonal and stepwise: the differencing order comes from repeated ADF
// tests, a small set of starting (p,q) candidates is fitted, and neighboring
// orders are explored until the information criterion stops improving.
// Candidate fits that fail are skipped rather than propagated.
package autoarima
