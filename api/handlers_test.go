package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopspring/decimal"

	"github.com/warp/lease-engine/api"
	"github.com/warp/lease-engine/lease"
	"github.com/warp/lease-engine/lease/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func decimalFrom(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := api.NewRouter(api.NewHandler(store.NewMemory()))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func standardRequest() api.ContractRequest {
	return api.ContractRequest{
		StartDate:         "2024-01-01",
		EndDate:           "2025-12-01",
		AnnualRatePercent: decimalFrom(6),
		MonthlyPayment:    decimalFrom(1_000_000),
		Frequency:         "monthly",
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// =============================================================================
// CALCULATION ENDPOINTS
// =============================================================================

func TestCalculate_OK(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/lease/calculate", standardRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[api.CalculateResponse](t, resp)
	assert.True(t, result.PresentValue.Equal(decimalFrom(22_562_866)))
	assert.Len(t, result.Schedule, 24)
	assert.NotEmpty(t, result.Journal)
	assert.Equal(t, "24 months", result.FormattedSummary.Duration)
}

func TestCalculate_ValidationFailure(t *testing.T) {
	server := newTestServer(t)

	req := standardRequest()
	req.StartDate = "2026-01-01"

	resp := postJSON(t, server.URL+"/api/lease/calculate", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[api.ErrorResponse](t, resp)
	assert.Contains(t, body.Details, "start date must be on or before end date")
}

func TestCalculate_TerminationBeforeFirstPayment(t *testing.T) {
	server := newTestServer(t)

	req := standardRequest()
	req.TerminationDate = "2023-06-01"

	resp := postJSON(t, server.URL+"/api/lease/calculate", req)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestValidateEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/lease/validate", standardRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[api.ValidateResponse](t, resp)
	assert.True(t, body.Valid)
	assert.Empty(t, body.Errors)

	bad := standardRequest()
	bad.Frequency = "weekly"
	resp = postJSON(t, server.URL+"/api/lease/validate", bad)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody[api.ValidateResponse](t, resp)
	assert.False(t, body.Valid)
	assert.Contains(t, body.Errors, "reporting frequency must be monthly or quarterly")
}

func TestExport_ReturnsWorkbook(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/lease/export", standardRequest())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "lease-2024-01-01-2025-12-01.xlsx")
}

// =============================================================================
// DRAFT AND HISTORY ENDPOINTS
// =============================================================================

func TestDraft_RoundTrip(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/draft", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, server.URL+"/api/draft", standardRequest())
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/draft", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	draft := decodeBody[api.ContractRequest](t, resp)
	assert.Equal(t, "2024-01-01", draft.StartDate)
	assert.Equal(t, "monthly", draft.Frequency)

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/draft", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/draft", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHistory_RecordedByCalculate(t *testing.T) {
	server := newTestServer(t)

	postJSON(t, server.URL+"/api/lease/calculate", standardRequest()).Body.Close()
	postJSON(t, server.URL+"/api/lease/calculate", standardRequest()).Body.Close()

	resp := doJSON(t, http.MethodGet, server.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := decodeBody[[]lease.HistoryEntry](t, resp)
	require.Len(t, entries, 2)

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/history/"+entries[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/history/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/history", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries = decodeBody[[]lease.HistoryEntry](t, resp)
	assert.Empty(t, entries)
}
