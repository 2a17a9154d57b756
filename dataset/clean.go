package dataset

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CleanStats counts what happened to the raw rows during cleaning.
type CleanStats struct {
	Total         int
	Kept          int
	Duplicates    int
	BadPrice      int
	NoDate        int
	OtherCurrency int
}

// Clean reduces raw price sightings to usable observations. Duplicate rows
// (same id, price band, currency, and dateSeen) are collapsed, the latest
// parseable sighting date is resolved, the price band is averaged with
// exact decimal arithmetic, the category path is reduced to its leaf, and
// only USD rows survive. Rows with no resolvable date or an unparseable
// price band are dropped; a summary of the drops is logged once.
func Clean(raw []RawRecord) ([]CleanRecord, CleanStats) {
	stats := CleanStats{Total: len(raw)}
	seen := make(map[string]struct{}, len(raw))
	two := decimal.NewFromInt(2)

	records := make([]CleanRecord, 0, len(raw))
	for _, r := range raw {
		key := strings.Join([]string{r.ID, r.AmountMin, r.AmountMax, r.Currency, r.DateSeen}, "|")
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if !strings.EqualFold(r.Currency, Currency) {
			stats.OtherCurrency++
			continue
		}

		min, errMin := decimal.NewFromString(r.AmountMin)
		max, errMax := decimal.NewFromString(r.AmountMax)
		if errMin != nil || errMax != nil {
			stats.BadPrice++
			continue
		}

		seenAt, ok := LatestSeen(r.DateSeen)
		if !ok {
			stats.NoDate++
			continue
		}

		avg, _ := min.Add(max).Div(two).Float64()
		records = append(records, CleanRecord{
			ID:       r.ID,
			Category: LeafCategory(r.Category),
			Currency: Currency,
			SeenAt:   seenAt,
			AvgPrice: avg,
		})
	}
	stats.Kept = len(records)

	log.Info().
		Int("total", stats.Total).
		Int("kept", stats.Kept).
		Int("duplicates", stats.Duplicates).
		Int("bad_price", stats.BadPrice).
		Int("no_date", stats.NoDate).
		Int("other_currency", stats.OtherCurrency).
		Msg("cleaned pricing rows")

	return records, stats
}
