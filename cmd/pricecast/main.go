// Command pricecast runs the weekly electronics price forecasting pipeline
// once, top to bottom: ensure the dataset is present, clean it, rank the
// categories, analyze each of the top categories sequentially, print the
// report, and export the chart payloads.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sartorproj/pricecast/analysis"
	"github.com/sartorproj/pricecast/config"
	"github.com/sartorproj/pricecast/dataset"
	"github.com/sartorproj/pricecast/report"
	"github.com/sartorproj/pricecast/timeseries"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("pricecast run failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx := context.Background()
	if err := dataset.EnsureDataset(ctx, cfg.DatasetPath, cfg.DatasetURL); err != nil {
		return err
	}

	raw, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return err
	}

	records, _ := dataset.Clean(raw)
	groups := dataset.GroupByCategory(records)
	top := dataset.TopCategories(groups, analysis.TopCategories)

	out := report.New(os.Stdout)
	out.PrintHeader()
	out.PrintTopCategories(top)

	outcomes := make([]analysis.Outcome, 0, len(top))
	for _, g := range top {
		weekly, err := timeseries.ResampleWeekly(g.Times, g.Prices, g.Category)
		if err != nil {
			return err
		}

		outcome, err := analysis.Analyze(g.Category, weekly)
		if err != nil {
			// A model failure aborts the remaining categories; this is a
			// one-shot analysis, not a hardened service.
			return err
		}
		out.PrintOutcome(outcome)
		outcomes = append(outcomes, outcome)
	}

	out.PrintSummary(outcomes)

	charts := report.BuildCharts(outcomes)
	if err := charts.WriteFile(cfg.ChartPath); err != nil {
		return err
	}
	log.Info().Str("path", cfg.ChartPath).Msg("chart payloads exported")

	return nil
}
