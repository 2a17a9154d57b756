package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names in the pricing export.
const (
	colID        = "id"
	colName      = "name"
	colAmountMin = "prices.amountMin"
	colAmountMax = "prices.amountMax"
	colCurrency  = "prices.currency"
	colDateSeen  = "prices.dateSeen"
	colCategory  = "categories"
	colMerchant  = "prices.merchant"
)

// Load reads the pricing CSV at path into raw records. The header must
// contain the price columns; id, name, and merchant are optional. Rows too
// short to carry the required columns are skipped.
func Load(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader reads pricing rows from r. See Load.
func LoadFromReader(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// The export has ragged rows; length is validated per record below.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.Trim(h, "\""))] = i
	}
	for _, required := range []string{colAmountMin, colAmountMax, colCurrency, colDateSeen, colCategory} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(strings.Trim(row[i], "\""))
	}

	var records []RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		records = append(records, RawRecord{
			ID:        field(row, colID),
			Name:      field(row, colName),
			AmountMin: field(row, colAmountMin),
			AmountMax: field(row, colAmountMax),
			Currency:  field(row, colCurrency),
			DateSeen:  field(row, colDateSeen),
			Category:  field(row, colCategory),
			Merchant:  field(row, colMerchant),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows in dataset")
	}
	return records, nil
}
