package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skinpoint/cms/pkg/httputil"
	"github.com/skinpoint/cms/pkg/observability"
	"github.com/skinpoint/cms/pkg/schema"
	"github.com/skinpoint/cms/pkg/storage"
)

const testToken = "valid-token"

// stubVerifier accepts exactly one token.
type stubVerifier struct{}

func (stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == testToken {
		return "user-1", nil
	}
	return "", errors.New("invalid token")
}

// fakeObjectStore records puts and serves URLs from a fake CDN.
type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	pingErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) PutObject(ctx context.Context, key string, content io.Reader, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStore) ObjectExists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (f *fakeObjectStore) HealthCheck(ctx context.Context) error {
	return f.pingErr
}

// recordingTrigger counts revalidation requests.
type recordingTrigger struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recordingTrigger) Revalidate(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recordingTrigger) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type testServer struct {
	*Server
	documents *storage.MemoryStore
	objects   *fakeObjectStore
	trigger   *recordingTrigger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	documents := storage.NewMemoryStore()
	ts := newTestServerWithDocuments(t, documents, newFakeObjectStore())
	ts.documents = documents
	return ts
}

// newTestServerWithDocuments lets a test swap in a misbehaving document
// store while keeping the rest of the wiring.
func newTestServerWithDocuments(t *testing.T, documents storage.DocumentStore, objects *fakeObjectStore) *testServer {
	t.Helper()
	trigger := &recordingTrigger{}

	srv := NewServer(Dependencies{
		Registry:  schema.NewRegistry(),
		Documents: documents,
		Objects:   objects,
		Verifier:  stubVerifier{},
		Trigger:   trigger,
		Logger:    observability.NewLogger(observability.ErrorLevel, io.Discard),
		Metrics:   observability.NewMetrics(nil),
	})

	return &testServer{Server: srv, objects: objects, trigger: trigger}
}

func (ts *testServer) request(t *testing.T, method, target string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) httputil.Envelope {
	t.Helper()
	var env httputil.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

// multipartBody builds a multipart request body with a file part plus extra
// form values.
func multipartBody(t *testing.T, filename string, content []byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func seedDocument(t *testing.T, ts *testServer, collection string, fields map[string]any) string {
	t.Helper()
	id, err := ts.documents.Create(context.Background(), collection, fields)
	require.NoError(t, err)
	return id
}

var _ http.Handler = (*Server)(nil)
