// Package dataset ingests the product-pricing CSV export: it loads raw
// price-sighting rows, cleans them into one observation per row (latest
// seen date, averaged price, leaf category, USD only), and groups the
// observations by category ranked by observation count. It also fetches
// the dataset file when it is absent and a source URL is configured.
package dataset
