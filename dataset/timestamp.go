package dataset

import (
	"path"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15-04-05",
	"2006-01-02T150405",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads an observation timestamp. Gossip recordings are named
// after their capture time, e.g. "gossip-out/2024-05-01_12:30:00.json", so a
// directory prefix and ".json" suffix are dropped and the first "_" separates
// date from time. Bare integers are unix seconds. Times without a zone are UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	s = path.Base(s)
	s = strings.TrimSuffix(s, ".json")
	s = strings.Replace(s, "_", "T", 1)

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
