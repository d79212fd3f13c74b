package dnac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/airmetrics/rrmreport/internal/core/domain"
	"github.com/airmetrics/rrmreport/internal/core/ports"
	"github.com/airmetrics/rrmreport/internal/telemetry"
)

const (
	sitesPath   = "/api/v1/dna/sunray/airfprofilesitesinfo"
	graphqlPath = "/api/kairos/v1/proxy/api/v2/core-services/customer-id/sunray/graphql"
)

// Client issues the AI-RRM queries against the controller: one REST
// call for site discovery and three parameterized GraphQL queries per
// site/band. Discovery failures abort the run; per-metric failures
// are logged and degrade to absent data.
//
// The client issues no retries of its own. Callers that need to ride
// out transient controller hiccups can wrap it behind the
// ports.ControllerClient interface.
type Client struct {
	session *Session
}

// NewClient creates a controller query client on an authenticated session.
func NewClient(session *Session) *Client {
	return &Client{session: session}
}

// ListSites returns all buildings with an AI-RRM profile. The
// controller reports floor-level entries; they are collapsed to one
// site per building name, first occurrence wins, since AI-RRM operates
// at building granularity. Zero eligible sites is a valid outcome and
// returns an empty slice.
func (c *Client) ListSites(ctx context.Context) ([]domain.Site, error) {
	telemetry.ControllerRequests.WithLabelValues("discovery").Inc()

	body, err := c.get(ctx, sitesPath)
	if err != nil {
		telemetry.ControllerRequestErrors.WithLabelValues("discovery", "transport").Inc()
		return nil, &domain.DiscoveryError{Err: err}
	}

	var payload struct {
		Response []struct {
			ProfileName string `json:"aiRfProfileName"`
			Buildings   []struct {
				UUID      string `json:"instanceUUID"`
				Name      string `json:"name"`
				Hierarchy string `json:"groupNameHierarchy"`
			} `json:"associatedBuildings"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		telemetry.ControllerRequestErrors.WithLabelValues("discovery", "decode").Inc()
		return nil, &domain.DiscoveryError{Err: fmt.Errorf("decoding site list: %w", err)}
	}

	seen := make(map[string]bool)
	sites := []domain.Site{}
	floors := 0
	for _, profile := range payload.Response {
		for _, b := range profile.Buildings {
			floors++
			if b.Name == "" || seen[b.Name] {
				continue
			}
			seen[b.Name] = true
			sites = append(sites, domain.Site{
				ID:          b.UUID,
				Name:        b.Name,
				Hierarchy:   b.Hierarchy,
				ProfileName: profile.ProfileName,
			})
			slog.Debug("Discovered site", "name", b.Name, "uuid", b.UUID)
		}
	}

	slog.Info("Site discovery complete", "sites", len(sites), "floor_entries", floors)
	return sites, nil
}

// CoverageSummary returns the latest coverage record for the
// site/band, or nil when the controller has no data or the query
// failed.
func (c *Client) CoverageSummary(ctx context.Context, siteID string, band domain.Band) *ports.CoverageSummary {
	node, ok := c.firstNode(ctx, "getRfCoverageSummaryLatest01", coverageQuery, siteID, band)
	if !ok {
		return nil
	}

	var payload struct {
		APCount     int    `json:"totalApCount"`
		Clients     int    `json:"totalClients"`
		Timestamp   string `json:"timestamp"`
		TimestampMs int64  `json:"timestampMs"`
	}
	if err := json.Unmarshal(node, &payload); err != nil {
		slog.Warn("Malformed coverage payload", "site_id", siteID, "band", band.Label(), "error", err)
		telemetry.ControllerRequestErrors.WithLabelValues("coverage", "decode").Inc()
		return nil
	}

	return &ports.CoverageSummary{
		APCount:     payload.APCount,
		ClientCount: payload.Clients,
		Timestamp:   payload.Timestamp,
	}
}

// PerformanceSummary returns the latest RRM performance record for the
// site/band, or nil when the controller has no data or the query
// failed.
func (c *Client) PerformanceSummary(ctx context.Context, siteID string, band domain.Band) *ports.PerformanceSummary {
	node, ok := c.firstNode(ctx, "getRfPerformanceSummaryLatest01", performanceQuery, siteID, band)
	if !ok {
		return nil
	}

	var payload struct {
		HealthScore float64 `json:"rrmHealthScore"`
		Changes     int     `json:"totalRrmChangesV2"`
		Timestamp   string  `json:"timestamp"`
	}
	if err := json.Unmarshal(node, &payload); err != nil {
		slog.Warn("Malformed performance payload", "site_id", siteID, "band", band.Label(), "error", err)
		telemetry.ControllerRequestErrors.WithLabelValues("performance", "decode").Inc()
		return nil
	}

	return &ports.PerformanceSummary{
		HealthScore: payload.HealthScore,
		ChangeCount: payload.Changes,
		Timestamp:   payload.Timestamp,
	}
}

// CurrentInsights returns the active AI-generated insights for the
// site/band, empty when there are none or the query failed.
func (c *Client) CurrentInsights(ctx context.Context, siteID string, band domain.Band) []domain.Insight {
	nodes, ok := c.queryNodes(ctx, "getCurrentInsights01", insightsQuery, siteID, band)
	if !ok {
		return nil
	}

	insights := make([]domain.Insight, 0, len(nodes))
	for _, node := range nodes {
		var payload struct {
			Type        string `json:"insightType"`
			Description string `json:"description"`
			Reason      string `json:"reason"`
		}
		if err := json.Unmarshal(node, &payload); err != nil {
			slog.Warn("Malformed insight payload", "site_id", siteID, "band", band.Label(), "error", err)
			telemetry.ControllerRequestErrors.WithLabelValues("insights", "decode").Inc()
			continue
		}
		insights = append(insights, domain.Insight{
			Type:        payload.Type,
			Description: payload.Description,
			Reason:      payload.Reason,
		})
	}
	return insights
}

// firstNode runs a GraphQL query and returns its first node, the
// common shape of the latest-summary queries.
func (c *Client) firstNode(ctx context.Context, operation, query, siteID string, band domain.Band) (json.RawMessage, bool) {
	nodes, ok := c.queryNodes(ctx, operation, query, siteID, band)
	if !ok || len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

func (c *Client) queryNodes(ctx context.Context, operation, query, siteID string, band domain.Band) ([]json.RawMessage, bool) {
	endpoint := endpointLabel(operation)
	telemetry.ControllerRequests.WithLabelValues(endpoint).Inc()

	payload := map[string]any{
		"operationName": operation,
		"query":         query,
		"variables": map[string]any{
			"buildingId":    siteID,
			"frequencyBand": band.Selector(),
		},
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}

	slog.Debug("Executing GraphQL query", "operation", operation, "site_id", siteID, "band", band.Label())

	body, err := c.post(ctx, graphqlPath, reqBody)
	if err != nil {
		slog.Warn("Controller query failed", "operation", operation, "site_id", siteID, "band", band.Label(), "error", err)
		telemetry.ControllerRequestErrors.WithLabelValues(endpoint, "transport").Inc()
		return nil, false
	}

	var envelope struct {
		Data map[string]struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		slog.Warn("Malformed GraphQL response", "operation", operation, "site_id", siteID, "band", band.Label(), "error", err)
		telemetry.ControllerRequestErrors.WithLabelValues(endpoint, "decode").Inc()
		return nil, false
	}

	return envelope.Data[operation].Nodes, true
}

func endpointLabel(operation string) string {
	switch operation {
	case "getRfCoverageSummaryLatest01":
		return "coverage"
	case "getRfPerformanceSummaryLatest01":
		return "performance"
	case "getCurrentInsights01":
		return "insights"
	default:
		return "graphql"
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	headers, err := c.session.Headers(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.session.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header = headers

	resp, err := c.session.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%s %s returned %s", method, path, resp.Status)
	}

	// Success bodies are read in full; a large deployment's site list
	// can exceed any small fixed cap.
	return io.ReadAll(resp.Body)
}
