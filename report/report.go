package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sartorproj/pricecast/analysis"
	"github.com/sartorproj/pricecast/dataset"
)

const rule = 72

// Reporter writes the human-readable analysis report.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) divider() {
	fmt.Fprintln(r.w, strings.Repeat("=", rule))
}

// PrintHeader prints the run banner.
func (r *Reporter) PrintHeader() {
	r.divider()
	r.line("pricecast - weekly electronics price forecasting")
	r.divider()
}

// PrintTopCategories lists the ranked categories and their observation
// counts.
func (r *Reporter) PrintTopCategories(groups []*dataset.CategorySeries) {
	r.line("")
	r.line("Top %d categories by observation count:", len(groups))
	for i, g := range groups {
		r.line("  %d. %s (%d observations)", i+1, g.Category, g.Count())
	}
}

// PrintOutcome prints one category's section of the report.
func (r *Reporter) PrintOutcome(o analysis.Outcome) {
	r.line("")
	r.divider()
	r.line("Category: %s", o.Category)
	r.divider()

	if o.Skip != nil {
		r.line("  Skipped: %s", o.Skip.Reason)
		return
	}

	rep := o.Report
	if rep.ADF != nil {
		r.line("  ADF statistic: %.4f (p-value %.4f)", rep.ADF.Statistic, rep.ADF.PValue)
	}
	if rep.Differenced {
		r.line("  Series differenced once; analysis is on the %s scale", rep.Scale)
	} else {
		r.line("  Series stationary; analysis is on the %s scale", rep.Scale)
	}
	r.line("  Selected order: ARIMA%v (%d models evaluated)", rep.Order, rep.ModelsEvaluated)
	r.line("  Test MAE:  %.4f", rep.MAE)
	r.line("  Test RMSE: %.4f", rep.RMSE)
	r.line("  Residual Ljung-Box p-value: %.4f", rep.LjungBoxPValue)
	r.line("  Mean price level: historical %.4f vs 12-week forecast %.4f",
		rep.HistoricalMean, rep.FutureMean)
	r.line("  Recommendation: %s", rep.Recommendation)
}

// PrintSummary renders the final table over analyzed categories. Skipped
// categories never appear.
func (r *Reporter) PrintSummary(outcomes []analysis.Outcome) {
	r.line("")
	r.divider()
	r.line("Summary")
	r.divider()

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tMAE\tRMSE\tORDER\tRECOMMENDATION")
	for _, o := range outcomes {
		if !o.Analyzed() {
			continue
		}
		rep := o.Report
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\tARIMA%v\t%s\n",
			o.Category, rep.MAE, rep.RMSE, rep.Order, rep.Recommendation)
	}
	tw.Flush()
}
