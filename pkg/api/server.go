package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skinpoint/cms/pkg/auth"
	"github.com/skinpoint/cms/pkg/httputil"
	"github.com/skinpoint/cms/pkg/media"
	"github.com/skinpoint/cms/pkg/observability"
	"github.com/skinpoint/cms/pkg/revalidate"
	"github.com/skinpoint/cms/pkg/schema"
	"github.com/skinpoint/cms/pkg/storage"
	"github.com/skinpoint/cms/pkg/ui"
)

// Dependencies carries everything a Server needs. Clients are constructed
// once at startup and injected; the server owns nothing with a lifecycle.
type Dependencies struct {
	Registry  *schema.Registry
	Documents storage.DocumentStore
	Objects   storage.ObjectStore
	Verifier  auth.TokenVerifier
	Trigger   revalidate.Trigger
	Logger    *observability.Logger
	Metrics   *observability.Metrics
}

// Server represents our API server
type Server struct {
	router    *mux.Router
	registry  *schema.Registry
	documents storage.DocumentStore
	objects   storage.ObjectStore
	guard     *auth.Guard
	media     *media.Service
	trigger   revalidate.Trigger
	renderer  *ui.Renderer
	logger    *observability.Logger
	metrics   *observability.Metrics
	handler   http.Handler
}

// maxRequestBytes caps every request body: the media ceiling plus headroom
// for the non-file multipart parts. JSON payloads never come close.
const maxRequestBytes = media.MaxUploadSize + 1<<20

// NewServer creates a new API server
func NewServer(deps Dependencies) *Server {
	documents := storage.NewInstrumentedStore(deps.Documents, deps.Metrics)

	s := &Server{
		router:    mux.NewRouter(),
		registry:  deps.Registry,
		documents: documents,
		objects:   deps.Objects,
		guard:     auth.NewGuard(deps.Verifier, deps.Logger),
		media:     media.NewService(deps.Objects, documents, deps.Logger, deps.Metrics),
		trigger:   deps.Trigger,
		renderer:  ui.NewRenderer(),
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}

	s.setupRoutes()
	s.handler = httputil.Chain(
		httputil.RecoveryMiddleware(deps.Logger),
		httputil.LoggingMiddleware(deps.Logger),
		httputil.MetricsMiddleware(deps.Metrics),
		httputil.MaxBytesMiddleware(maxRequestBytes),
	)(s.router)

	return s
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes() {
	// Method routing happens inside the handlers so unsupported methods get
	// the JSON 405 envelope instead of mux's plain-text default.
	// The collection routes guard per method (listing is public), so they
	// authenticate in-handler; media and the admin form are guarded whole.
	s.router.HandleFunc("/collection", s.handleCollection)
	s.router.HandleFunc("/collection/put", s.handleDocument)
	s.router.Handle("/media", s.guard.Middleware(http.HandlerFunc(s.handleMedia)))
	s.router.HandleFunc("/revalidate", s.handleRevalidate)

	s.router.Handle("/admin/form", s.guard.Middleware(http.HandlerFunc(s.handleForm)))

	s.router.HandleFunc("/healthz", s.handleHealth)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Not found")
	})
}

// ServeHTTP dispatches through the middleware chain.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// authenticate verifies the bearer token and writes the 401 envelope when
// verification fails. Callers stop on !ok.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (auth.Result, bool) {
	res := s.guard.Verify(r)
	if !res.Authenticated {
		httputil.WriteUnauthorized(w)
		return res, false
	}
	return res, true
}
