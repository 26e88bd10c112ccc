package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDocuments(t *testing.T) {
	ts := newTestServer(t)
	seedDocument(t, ts, "merk", map[string]any{"name": "Dermalogica"})
	seedDocument(t, ts, "merk", map[string]any{"name": "Environ"})

	rec := ts.request(t, http.MethodGet, "/collection?collection=merk", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	items, ok := env.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dermalogica", first["name"])
	assert.NotEmpty(t, first["id"])
}

func TestListDocumentsEmpty(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/collection?collection=merk", nil, false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "No merks found", env.Message)
}

func TestListDocumentsMissingCollection(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/collection", nil, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Collection name is required", decodeEnvelope(t, rec).Message)
}

func TestCollectionMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodDelete, "/collection?collection=merk", nil, true)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decodeEnvelope(t, rec).Message)
}

func TestCreateDocumentRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/collection?collection=merk", map[string]any{"name": "x"}, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeEnvelope(t, rec).Message)
	assert.Zero(t, ts.trigger.count())
}

func TestCreateDocument(t *testing.T) {
	ts := newTestServer(t)
	payload := map[string]any{
		"name":        "Dermalogica",
		"description": "Professional skin care",
		"logo":        map[string]any{"url": "https://cdn.test/logo.png", "alt": "Logo"},
		"image":       map[string]any{"url": "https://cdn.test/hero.png", "alt": "Hero"},
	}

	rec := ts.request(t, http.MethodPost, "/collection?collection=merk", payload, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "Document created successfully", env.Message)
	assert.Equal(t, 1, ts.trigger.count())

	doc, err := ts.documents.Get(context.Background(), "merk", env.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dermalogica", doc.Fields["name"])
}

func TestCreateDocumentStripsClientID(t *testing.T) {
	ts := newTestServer(t)
	payload := map[string]any{
		"id":          "client-chosen",
		"name":        "Dermalogica",
		"description": "Professional skin care",
		"logo":        map[string]any{"url": "https://cdn.test/logo.png", "alt": "Logo"},
		"image":       map[string]any{"url": "https://cdn.test/hero.png", "alt": "Hero"},
	}

	rec := ts.request(t, http.MethodPost, "/collection?collection=merk", payload, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.NotEqual(t, "client-chosen", env.ID)

	doc, err := ts.documents.Get(context.Background(), "merk", env.ID)
	require.NoError(t, err)
	assert.NotContains(t, doc.Fields, "id")
}

func TestCreateDocumentValidation(t *testing.T) {
	ts := newTestServer(t)
	payload := map[string]any{
		"name":   12345,
		"bogus":  "nope",
		"logo":   map[string]any{"url": "https://cdn.test/logo.png", "alt": "Logo"},
		"image":  map[string]any{"url": "https://cdn.test/hero.png", "alt": "Hero"},
		"extra2": true,
	}

	rec := ts.request(t, http.MethodPost, "/collection?collection=merk", payload, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)

	raw, err := json.Marshal(env.Errors)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name"`)
	assert.Contains(t, string(raw), "must be a string")
	assert.Contains(t, string(raw), "unknown field")
}

func TestCreateDocumentUnregisteredCollection(t *testing.T) {
	ts := newTestServer(t)
	payload := map[string]any{"anything": "goes", "nested": map[string]any{"deep": true}}

	rec := ts.request(t, http.MethodPost, "/collection?collection=drafts", payload, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	doc, err := ts.documents.Get(context.Background(), "drafts", env.ID)
	require.NoError(t, err)
	assert.Equal(t, "goes", doc.Fields["anything"])
}

func TestCreateDocumentInvalidJSON(t *testing.T) {
	ts := newTestServer(t)

	req := ts.request(t, http.MethodPost, "/collection?collection=merk", nil, true)
	require.Equal(t, http.StatusBadRequest, req.Code)
}

func TestGetDocument(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "behandeling", map[string]any{"name": "Massage", "price": 75.0})

	rec := ts.request(t, http.MethodGet, "/collection/put?collection=behandeling&id="+id, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "Massage", data["name"])
}

func TestGetDocumentRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "behandeling", map[string]any{"name": "Massage"})

	rec := ts.request(t, http.MethodGet, "/collection/put?collection=behandeling&id="+id, nil, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDocumentNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/collection/put?collection=behandeling&id=missing", nil, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Document not found", decodeEnvelope(t, rec).Message)
}

func TestUpdateDocument(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "behandeling", map[string]any{
		"name":        "Massage",
		"description": "Relaxing",
		"price":       75.0,
	})

	rec := ts.request(t, http.MethodPut, "/collection/put?collection=behandeling&id="+id, map[string]any{"price": 85.0}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, id, env.ID)
	assert.Equal(t, "Document updated successfully", env.Message)
	assert.Equal(t, 1, ts.trigger.count())

	// untouched fields survive the merge
	doc, err := ts.documents.Get(context.Background(), "behandeling", id)
	require.NoError(t, err)
	assert.Equal(t, 85.0, doc.Fields["price"])
	assert.Equal(t, "Massage", doc.Fields["name"])
}

func TestUpdateDocumentPatch(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "behandeling", map[string]any{"name": "Massage"})

	rec := ts.request(t, http.MethodPatch, "/collection/put?collection=behandeling&id="+id, map[string]any{"name": "Sports massage"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDocumentMissingID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPut, "/collection/put?collection=behandeling", map[string]any{"price": 85.0}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Document ID is required for updates", decodeEnvelope(t, rec).Message)
}

func TestUpdateDocumentNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPut, "/collection/put?collection=behandeling&id=nope", map[string]any{"price": 85.0}, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Document with ID nope not found", decodeEnvelope(t, rec).Message)
}

func TestUpdateDocumentPartialValidation(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "merk", map[string]any{"name": "Dermalogica"})

	t.Run("valid partial payload", func(t *testing.T) {
		rec := ts.request(t, http.MethodPut, "/collection/put?collection=merk&id="+id, map[string]any{"name": "Environ"}, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("type violation still rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPut, "/collection/put?collection=merk&id="+id, map[string]any{"name": 7}, true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decodeEnvelope(t, rec).Message)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPut, "/collection/put?collection=merk&id="+id, map[string]any{"bogus": "x"}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteDocument(t *testing.T) {
	ts := newTestServer(t)
	id := seedDocument(t, ts, "behandeling", map[string]any{"name": "Massage"})

	rec := ts.request(t, http.MethodDelete, "/collection/put?collection=behandeling&id="+id, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Document deleted successfully", decodeEnvelope(t, rec).Message)
	assert.Equal(t, 1, ts.trigger.count())
}

func TestDeleteDocumentIdempotent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodDelete, "/collection/put?collection=behandeling&id=already-gone", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestDocumentMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/collection/put?collection=behandeling&id=x", nil, true)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
