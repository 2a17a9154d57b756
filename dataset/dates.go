package dataset

import (
	"strings"
	"time"
)

// dateSeen entries come in a few shapes across the export.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LatestSeen resolves a comma-separated list of timestamps to the most
// recent parseable one. Entries that fail to parse are ignored; ok is false
// when the input is empty or nothing parses.
func LatestSeen(dateSeen string) (latest time.Time, ok bool) {
	for _, part := range strings.Split(dateSeen, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, layout := range dateFormats {
			t, err := time.Parse(layout, part)
			if err != nil {
				continue
			}
			if !ok || t.After(latest) {
				latest = t
				ok = true
			}
			break
		}
	}
	return latest, ok
}
