package domain

import (
	"log/slog"
	"strings"
)

// Band identifies one of the radio frequency ranges AI-RRM optimizes
// independently. The numeric value is the selector the controller's
// GraphQL API expects.
type Band int

const (
	Band24GHz Band = 2
	Band5GHz  Band = 5
	Band6GHz  Band = 6
)

// AllBands lists the supported bands in display order.
var AllBands = []Band{Band24GHz, Band5GHz, Band6GHz}

// Label returns the human-readable band name used in reports.
func (b Band) Label() string {
	switch b {
	case Band24GHz:
		return "2.4 GHz"
	case Band5GHz:
		return "5 GHz"
	case Band6GHz:
		return "6 GHz"
	default:
		return "Unknown"
	}
}

// Selector returns the numeric band selector for controller queries.
func (b Band) Selector() int {
	return int(b)
}

// ParseBands parses a comma-separated band list such as "2.4,5,6".
// Unrecognized tokens are logged and skipped. An empty or fully
// invalid list falls back to all supported bands.
func ParseBands(s string) []Band {
	var bands []Band
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "":
			continue
		case "2.4":
			bands = append(bands, Band24GHz)
		case "5", "5.0":
			bands = append(bands, Band5GHz)
		case "6", "6.0":
			bands = append(bands, Band6GHz)
		default:
			slog.Warn("Ignoring invalid frequency band", "band", strings.TrimSpace(part))
		}
	}
	if len(bands) == 0 {
		return append([]Band(nil), AllBands...)
	}
	return bands
}
