package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/nope", nil, false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Not found", env.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// generate at least one observation first
	ts.request(t, http.MethodGet, "/collection?collection=merk", nil, false)

	rec := ts.request(t, http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cms_http_requests_total")
}

func TestMetricsRecordStoreOperations(t *testing.T) {
	ts := newTestServer(t)
	seedDocument(t, ts, "merk", map[string]any{"name": "Dermalogica"})

	payload := map[string]any{
		"name":        "Environ",
		"description": "Professional skin care",
		"logo":        map[string]any{"url": "https://cdn.test/logo.png", "alt": "Logo"},
		"image":       map[string]any{"url": "https://cdn.test/hero.png", "alt": "Hero"},
	}
	rec := ts.request(t, http.MethodPost, "/collection?collection=merk", payload, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = ts.request(t, http.MethodGet, "/collection?collection=merk", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `cms_store_operations_total{collection="merk",operation="create",status="ok"}`)
	assert.Contains(t, body, `cms_store_operations_total{collection="merk",operation="list",status="ok"}`)
}

func TestRevalidateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/revalidate", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Revalidation triggered", env.Message)
	assert.Equal(t, 1, ts.trigger.count())
}

func TestRevalidateEndpointWithPaths(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"paths": []string{"/behandelingen"}}
	rec := ts.request(t, http.MethodPost, "/revalidate", body, false)
	require.Equal(t, http.StatusOK, rec.Code)

	ts.trigger.mu.Lock()
	defer ts.trigger.mu.Unlock()
	require.Len(t, ts.trigger.calls, 1)
	assert.Equal(t, []string{"/behandelingen"}, ts.trigger.calls[0])
}

func TestRevalidateMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/revalidate", nil, false)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decodeEnvelope(t, rec).Message)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/healthz", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	status, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", status["documents"])
	assert.Equal(t, "ok", status["objects"])
}

func TestHealthEndpointUnhealthy(t *testing.T) {
	ts := newTestServer(t)
	ts.objects.pingErr = assert.AnError

	rec := ts.request(t, http.MethodGet, "/healthz", nil, false)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)

	status, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unavailable", status["objects"])
	assert.Equal(t, "ok", status["documents"])
}
