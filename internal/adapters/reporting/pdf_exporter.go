package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

// PDFExporter renders an assembled report as a paginated PDF. Export
// is a pure function of the report value: two calls with the same
// metadata produce byte-identical output.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export generates the document: title and summary, a section for
// sites requiring attention with their insights inline, the complete
// site/band listing, and the detailed insight texts.
func (e *PDFExporter) Export(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(report.Metadata.GeneratedAt)
	pdf.AddPage()

	e.addHeader(pdf, report)
	e.addSummary(pdf, report)

	flagged := flaggedBySite(report.Metrics, report.Thresholds)
	if len(flagged) > 0 {
		e.addIssuesSection(pdf, flagged, report.Thresholds)
	}

	e.addAllSitesTable(pdf, report)
	e.addInsightsSection(pdf, report.Metrics)
	e.addFooter(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &domain.RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// siteGroup keeps one flagged site's records together in discovery order.
type siteGroup struct {
	site    domain.Site
	metrics []domain.BandMetric
}

// flaggedBySite groups the flagged records per site, preserving site
// and band order.
func flaggedBySite(metrics []domain.BandMetric, t domain.Thresholds) []siteGroup {
	var groups []siteGroup
	index := make(map[string]int)
	for _, m := range metrics {
		if !m.HasIssues(t) {
			continue
		}
		i, ok := index[m.Site.ID]
		if !ok {
			i = len(groups)
			index[m.Site.ID] = i
			groups = append(groups, siteGroup{site: m.Site})
		}
		groups[i].metrics = append(groups[i].metrics, m)
	}
	return groups
}

// addHeader adds the report title, optional logo and generation line
func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, report *domain.Report) {
	if report.Metadata.LogoPath != "" {
		pdf.ImageOptions(report.Metadata.LogoPath, 160, 10, 30, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(26, 84, 144) // Dark blue
	pdf.CellFormat(0, 15, report.Metadata.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	dateStr := fmt.Sprintf("Generated: %s", report.Metadata.GeneratedAt.Format("2006-01-02 15:04:05"))
	pdf.CellFormat(0, 6, dateStr, "", 1, "L", false, 0, "")
	pdf.Ln(8)
}

// addSummary adds the executive summary table
func (e *PDFExporter) addSummary(pdf *gofpdf.Fpdf, report *domain.Report) {
	e.sectionTitle(pdf, "Executive Summary")

	rows := []struct {
		label string
		value string
	}{
		{"Total Sites", fmt.Sprintf("%d", report.Stats.TotalSites)},
		{"Sites Requiring Attention", fmt.Sprintf("%d", report.Stats.SitesWithIssues)},
		{"Total Access Points", fmt.Sprintf("%d", report.Stats.TotalAPs)},
		{"Total Clients", fmt.Sprintf("%d", report.Stats.TotalClients)},
		{"Total Insights", fmt.Sprintf("%d", report.Stats.TotalInsights)},
		{"Average Health Score", fmt.Sprintf("%.1f", report.Stats.AverageHealthScore)},
	}

	// Header row
	pdf.SetFillColor(26, 84, 144)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFillColor(245, 245, 220)
	for _, row := range rows {
		pdf.CellFormat(80, 7, row.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, row.value, "1", 1, "L", true, 0, "")
	}

	pdf.Ln(8)
}

// addIssuesSection adds one table per flagged site with its insights inline
func (e *PDFExporter) addIssuesSection(pdf *gofpdf.Fpdf, groups []siteGroup, t domain.Thresholds) {
	e.sectionTitle(pdf, "Sites Requiring Attention")

	for _, g := range groups {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(0, 7, g.site.Name, "", 1, "L", false, 0, "")

		// Table header
		pdf.SetFillColor(217, 83, 79)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(28, 7, "Band", "1", 0, "C", true, 0, "")
		pdf.CellFormat(28, 7, "Health", "1", 0, "C", true, 0, "")
		pdf.CellFormat(28, 7, "Changes", "1", 0, "C", true, 0, "")
		pdf.CellFormat(28, 7, "Insights", "1", 0, "C", true, 0, "")
		pdf.CellFormat(24, 7, "APs", "1", 0, "C", true, 0, "")
		pdf.CellFormat(24, 7, "Clients", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, m := range g.metrics {
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(28, 6, m.Band.Label(), "1", 0, "C", false, 0, "")

			if m.HealthScore < t.HealthScore {
				pdf.SetTextColor(220, 53, 69)
			}
			pdf.CellFormat(28, 6, fmt.Sprintf("%.1f", m.HealthScore), "1", 0, "C", false, 0, "")

			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(28, 6, fmt.Sprintf("%d", m.ChangeCount), "1", 0, "C", false, 0, "")
			pdf.CellFormat(28, 6, fmt.Sprintf("%d", len(m.Insights)), "1", 0, "C", false, 0, "")
			pdf.CellFormat(24, 6, fmt.Sprintf("%d", m.APCount), "1", 0, "C", false, 0, "")
			pdf.CellFormat(24, 6, fmt.Sprintf("%d", m.ClientCount), "1", 1, "C", false, 0, "")
		}

		// Insight summaries inline, grouped by band
		for _, m := range g.metrics {
			for _, insight := range m.Insights {
				pdf.SetFont("Arial", "I", 8)
				pdf.SetTextColor(100, 100, 100)
				line := fmt.Sprintf("%s: [%s] %s", m.Band.Label(), insight.Type, insight.Description)
				pdf.MultiCell(0, 4, line, "", "L", false)
			}
		}

		pdf.Ln(5)
	}

	pdf.Ln(3)
}

// addAllSitesTable adds the complete site/band listing. Rows carrying
// insights get a marker after the site name.
func (e *PDFExporter) addAllSitesTable(pdf *gofpdf.Fpdf, report *domain.Report) {
	pdf.AddPage()
	e.sectionTitle(pdf, "All Sites - Detailed Metrics")

	pdf.SetFillColor(26, 84, 144)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(50, 7, "Site", "1", 0, "L", true, 0, "")
	pdf.CellFormat(24, 7, "Band", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Health", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Changes", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Insights", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "APs", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Clients", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for i, m := range report.Metrics {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}

		if i%2 == 1 {
			pdf.SetFillColor(235, 235, 235)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		name := m.Site.Name
		if len(m.Insights) > 0 {
			name += " *"
		}

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(50, 6, name, "1", 0, "L", true, 0, "")
		pdf.CellFormat(24, 6, m.Band.Label(), "1", 0, "C", true, 0, "")

		if m.HealthScore < report.Thresholds.HealthScore {
			pdf.SetTextColor(220, 53, 69)
		}
		pdf.CellFormat(22, 6, fmt.Sprintf("%.1f", m.HealthScore), "1", 0, "C", true, 0, "")

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(22, 6, fmt.Sprintf("%d", m.ChangeCount), "1", 0, "C", true, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%d", len(m.Insights)), "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", m.APCount), "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", m.ClientCount), "1", 1, "C", true, 0, "")
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "* active insights present", "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

// addInsightsSection lists every insight with its full reasoning text
func (e *PDFExporter) addInsightsSection(pdf *gofpdf.Fpdf, metrics []domain.BandMetric) {
	hasInsights := false
	for _, m := range metrics {
		if len(m.Insights) > 0 {
			hasInsights = true
			break
		}
	}
	if !hasInsights {
		return
	}

	pdf.AddPage()
	e.sectionTitle(pdf, "Detailed Insights")

	for _, m := range metrics {
		for _, insight := range m.Insights {
			if pdf.GetY() > 250 {
				pdf.AddPage()
			}

			pdf.SetFont("Arial", "B", 10)
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s", m.Site.Name, m.Band.Label()), "", 1, "L", false, 0, "")

			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("Type: %s", insight.Type), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Description: %s", insight.Description), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Reason: %s", insight.Reason), "", "L", false)
			pdf.Ln(3)
		}
	}
}

// addFooter adds the report footer
func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf, report *domain.Report) {
	pdf.SetY(-20)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(3)

	id := report.Metadata.ID
	if len(id) > 8 {
		id = id[:8]
	}
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	footerText := fmt.Sprintf("Generated by %s | Report ID: %s", report.Metadata.GeneratedBy, id)
	pdf.CellFormat(0, 5, footerText, "", 1, "C", false, 0, "")
}

func (e *PDFExporter) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(26, 84, 144)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}
