package domain

import "time"

// ReportMetadata describes one generated document.
type ReportMetadata struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	LogoPath    string // optional branding image, empty to omit
}

// Report aggregates everything the exporter needs to lay out a
// document. It carries no behavior: rendering is a pure function of
// this value.
type Report struct {
	Metadata   ReportMetadata
	Metrics    []BandMetric
	Stats      SummaryStats
	Thresholds Thresholds
}
