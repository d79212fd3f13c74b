package domain

// Insight is an AI-generated recommendation for a site/band. The
// content is taken verbatim from the controller; only its presence
// matters for classification.
type Insight struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// BandMetric holds every metric collected for one (site, band) pair
// during a report run. Records are built once and never mutated.
//
// Absent data degrades to the zero values so the collected set is
// always rectangular: one record per discovered site per enabled band.
type BandMetric struct {
	Site Site `json:"site"`
	Band Band `json:"band"`

	// Coverage
	APCount     int `json:"ap_count"`
	ClientCount int `json:"client_count"`

	// Performance
	HealthScore float64 `json:"health_score"` // nominal range 0-100
	ChangeCount int     `json:"change_count"` // RRM optimizations applied

	Insights []Insight `json:"insights,omitempty"`

	// Collection timestamp as reported by the controller. Coverage
	// timestamp wins, performance is the fallback, empty if neither
	// query returned one.
	Timestamp string `json:"timestamp,omitempty"`
}

// Thresholds are the classification limits for flagging a site/band
// as requiring attention.
type Thresholds struct {
	HealthScore float64 // flag when health drops below this
	ChangeCount int     // flag when RRM changes exceed this
}

// DefaultThresholds mirrors the controller UI defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HealthScore: 70.0,
		ChangeCount: 100,
	}
}

// HasIssues reports whether this record should be flagged for
// administrator attention: health below threshold, any active
// insight, or an RRM change count above threshold. It is a pure
// function of the record and is recomputed on every use.
func (m BandMetric) HasIssues(t Thresholds) bool {
	return m.HealthScore < t.HealthScore ||
		len(m.Insights) > 0 ||
		m.ChangeCount > t.ChangeCount
}
