// Package report renders the analysis results: the ranked category list,
// one section per category, a final aligned summary table, and a JSON chart
// export (weekly series, forecast vs actual, and future forecast per
// category) for a plotting frontend.
package report
