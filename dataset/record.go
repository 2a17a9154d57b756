package dataset

import "time"

// UnknownCategory is the sentinel assigned to rows with no category path.
const UnknownCategory = "Unknown"

// Currency is the single currency the analysis is restricted to.
const Currency = "USD"

// RawRecord is one row of the pricing export: a single price sighting with
// a min/max price band, the currency, the dates the price was seen, and
// the product's hierarchical category path. Prices stay as strings until
// cleaning so unparseable rows can be dropped rather than zeroed.
type RawRecord struct {
	ID        string
	Name      string
	AmountMin string
	AmountMax string
	Currency  string
	DateSeen  string
	Category  string
	Merchant  string
}

// CleanRecord is a raw record reduced to one usable observation.
type CleanRecord struct {
	ID       string
	Category string
	Currency string
	SeenAt   time.Time
	AvgPrice float64
}
