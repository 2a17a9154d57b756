package dataset

import (
	"sort"
	"time"
)

// CategorySeries is the set of price observations for one category, kept in
// chronological order.
type CategorySeries struct {
	Category string
	Times    []time.Time
	Prices   []float64
}

// Count returns the number of observations in the category.
func (c *CategorySeries) Count() int {
	return len(c.Prices)
}

// GroupByCategory buckets clean records by category and sorts each bucket
// chronologically.
func GroupByCategory(records []CleanRecord) []*CategorySeries {
	byCat := make(map[string]*CategorySeries)
	for _, r := range records {
		g, ok := byCat[r.Category]
		if !ok {
			g = &CategorySeries{Category: r.Category}
			byCat[r.Category] = g
		}
		g.Times = append(g.Times, r.SeenAt)
		g.Prices = append(g.Prices, r.AvgPrice)
	}

	groups := make([]*CategorySeries, 0, len(byCat))
	for _, g := range byCat {
		sortByTime(g)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}

// TopCategories returns the n categories with the most observations,
// largest first. Ties break alphabetically so the ranking is deterministic.
func TopCategories(groups []*CategorySeries, n int) []*CategorySeries {
	ranked := make([]*CategorySeries, len(groups))
	copy(ranked, groups)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count() != ranked[j].Count() {
			return ranked[i].Count() > ranked[j].Count()
		}
		return ranked[i].Category < ranked[j].Category
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func sortByTime(g *CategorySeries) {
	idx := make([]int, len(g.Times))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return g.Times[idx[a]].Before(g.Times[idx[b]]) })

	times := make([]time.Time, len(idx))
	prices := make([]float64, len(idx))
	for i, j := range idx {
		times[i] = g.Times[j]
		prices[i] = g.Prices[j]
	}
	g.Times, g.Prices = times, prices
}
