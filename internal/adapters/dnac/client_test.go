package dnac

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

// newTestController spins up a controller stub: auth endpoint issuing
// a fixed token, the discovery endpoint, and a GraphQL endpoint that
// answers per operation name.
func newTestController(t *testing.T, sitesBody string, graphqlResponses map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fmt.Fprint(w, `{"Token":"test-token"}`)
	})
	mux.HandleFunc(sitesPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, sitesBody)
	})
	mux.HandleFunc(graphqlPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var payload struct {
			OperationName string `json:"operationName"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		resp, ok := graphqlResponses[payload.OperationName]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, resp)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	session, err := NewSession(server.URL, "admin", "secret", true)
	require.NoError(t, err)
	return NewClient(session)
}

func TestSessionLogin(t *testing.T) {
	server := newTestController(t, `{"response":[]}`, nil)

	session, err := NewSession(server.URL, "admin", "secret", true)
	require.NoError(t, err)
	require.NoError(t, session.Login(context.Background()))

	headers, err := session.Headers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", headers.Get("X-Auth-Token"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
}

func TestSessionLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session, err := NewSession(server.URL, "admin", "wrong", true)
	require.NoError(t, err)

	err = session.Login(context.Background())
	var authErr *domain.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestSessionLoginMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer server.Close()

	session, err := NewSession(server.URL, "admin", "secret", true)
	require.NoError(t, err)

	err = session.Login(context.Background())
	var authErr *domain.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestSessionLazyLoginHappensOnce(t *testing.T) {
	logins := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins++
		fmt.Fprint(w, `{"Token":"test-token"}`)
	}))
	defer server.Close()

	session, err := NewSession(server.URL, "admin", "secret", true)
	require.NoError(t, err)

	_, err = session.Headers(context.Background())
	require.NoError(t, err)
	_, err = session.Headers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, logins)
}

func TestNewSessionValidation(t *testing.T) {
	_, err := NewSession("", "admin", "secret", true)
	assert.Error(t, err)

	_, err = NewSession("https://ctrl.example.com", "", "secret", true)
	assert.Error(t, err)

	_, err = NewSession("https://ctrl.example.com", "admin", "", true)
	assert.Error(t, err)
}

func TestListSitesDeduplicatesFloors(t *testing.T) {
	// The controller reports floor-level entries; the same building
	// name appears once per floor and must collapse to one site.
	sitesBody := `{"response":[{
		"aiRfProfileName":"CatC-Production",
		"associatedBuildings":[
			{"instanceUUID":"uuid-1","name":"Admin Building","groupNameHierarchy":"Global/Sydney/Admin Building"},
			{"instanceUUID":"uuid-1b","name":"Admin Building","groupNameHierarchy":"Global/Sydney/Admin Building"},
			{"instanceUUID":"uuid-2","name":"Lab Building","groupNameHierarchy":"Global/Sydney/Lab Building"},
			{"instanceUUID":"uuid-x","name":"","groupNameHierarchy":""}
		]
	}]}`
	client := newTestClient(t, newTestController(t, sitesBody, nil))

	sites, err := client.ListSites(context.Background())
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, "uuid-1", sites[0].ID) // first occurrence wins
	assert.Equal(t, "Admin Building", sites[0].Name)
	assert.Equal(t, "CatC-Production", sites[0].ProfileName)
	assert.Equal(t, "Lab Building", sites[1].Name)
}

func TestListSitesEmptyIsNotAnError(t *testing.T) {
	client := newTestClient(t, newTestController(t, `{"response":[]}`, nil))

	sites, err := client.ListSites(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, sites)
}

func TestListSitesTransportFailure(t *testing.T) {
	server := newTestController(t, `{"response":[]}`, nil)
	client := newTestClient(t, server)
	server.Close()

	_, err := client.ListSites(context.Background())
	var discErr *domain.DiscoveryError
	assert.ErrorAs(t, err, &discErr)
}

func TestListSitesLargePayload(t *testing.T) {
	// A few thousand floor entries push the discovery response past
	// 1 MiB; it must still parse in full.
	var sb strings.Builder
	sb.WriteString(`{"response":[{"aiRfProfileName":"CatC-Production","associatedBuildings":[`)
	for i := 0; i < 10000; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb,
			`{"instanceUUID":"uuid-%05d","name":"Building %05d","groupNameHierarchy":"Global/Australia/Sydney/Campus %05d/Building %05d"}`,
			i, i, i, i)
	}
	sb.WriteString(`]}]}`)
	body := sb.String()
	require.Greater(t, len(body), 1<<20)

	client := newTestClient(t, newTestController(t, body, nil))

	sites, err := client.ListSites(context.Background())
	require.NoError(t, err)
	assert.Len(t, sites, 10000)
	assert.Equal(t, "Building 09999", sites[9999].Name)
}

func TestListSitesMalformedPayload(t *testing.T) {
	client := newTestClient(t, newTestController(t, `not json`, nil))

	_, err := client.ListSites(context.Background())
	var discErr *domain.DiscoveryError
	assert.ErrorAs(t, err, &discErr)
}

func TestCoverageSummary(t *testing.T) {
	responses := map[string]string{
		"getRfCoverageSummaryLatest01": `{"data":{"getRfCoverageSummaryLatest01":{"nodes":[
			{"totalApCount":12,"totalClients":45,"timestamp":"2026-02-03T10:00:00Z"}
		]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	coverage := client.CoverageSummary(context.Background(), "uuid-1", domain.Band5GHz)
	require.NotNil(t, coverage)
	assert.Equal(t, 12, coverage.APCount)
	assert.Equal(t, 45, coverage.ClientCount)
	assert.Equal(t, "2026-02-03T10:00:00Z", coverage.Timestamp)
}

func TestCoverageSummaryNoData(t *testing.T) {
	responses := map[string]string{
		"getRfCoverageSummaryLatest01": `{"data":{"getRfCoverageSummaryLatest01":{"nodes":[]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	assert.Nil(t, client.CoverageSummary(context.Background(), "uuid-1", domain.Band6GHz))
}

func TestCoverageSummaryQueryFailureIsAbsent(t *testing.T) {
	// GraphQL endpoint answers 500: the result is absent data, not an
	// aborted run.
	client := newTestClient(t, newTestController(t, `{"response":[]}`, map[string]string{}))

	assert.Nil(t, client.CoverageSummary(context.Background(), "uuid-1", domain.Band24GHz))
}

func TestPerformanceSummary(t *testing.T) {
	responses := map[string]string{
		"getRfPerformanceSummaryLatest01": `{"data":{"getRfPerformanceSummaryLatest01":{"nodes":[
			{"rrmHealthScore":85.5,"totalRrmChangesV2":23,"timestamp":"2026-02-03T10:00:00Z"}
		]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	performance := client.PerformanceSummary(context.Background(), "uuid-1", domain.Band5GHz)
	require.NotNil(t, performance)
	assert.Equal(t, 85.5, performance.HealthScore)
	assert.Equal(t, 23, performance.ChangeCount)
}

func TestPerformanceSummaryMalformedPayload(t *testing.T) {
	responses := map[string]string{
		"getRfPerformanceSummaryLatest01": `{"data":{"getRfPerformanceSummaryLatest01":{"nodes":[
			{"rrmHealthScore":"not-a-number"}
		]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	assert.Nil(t, client.PerformanceSummary(context.Background(), "uuid-1", domain.Band5GHz))
}

func TestCurrentInsights(t *testing.T) {
	responses := map[string]string{
		"getCurrentInsights01": `{"data":{"getCurrentInsights01":{"nodes":[
			{"insightType":"High Co-Channel Interference","description":"Overlapping channels","reason":"Enable DCA"},
			{"insightType":"Channel Utilization Warning","description":"Utilization above threshold","reason":"Add APs"}
		]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	insights := client.CurrentInsights(context.Background(), "uuid-1", domain.Band5GHz)
	require.Len(t, insights, 2)
	assert.Equal(t, "High Co-Channel Interference", insights[0].Type)
	assert.Equal(t, "Overlapping channels", insights[0].Description)
	assert.Equal(t, "Enable DCA", insights[0].Reason)
}

func TestCurrentInsightsEmpty(t *testing.T) {
	responses := map[string]string{
		"getCurrentInsights01": `{"data":{"getCurrentInsights01":{"nodes":[]}}}`,
	}
	client := newTestClient(t, newTestController(t, `{"response":[]}`, responses))

	assert.Empty(t, client.CurrentInsights(context.Background(), "uuid-1", domain.Band24GHz))
}
