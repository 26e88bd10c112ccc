package api

import (
	"net/http"

	"github.com/skinpoint/cms/pkg/httputil"
)

// handleHealth serves GET /healthz, probing both storage backends.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.WriteMethodNotAllowed(w)
		return
	}

	status := map[string]string{
		"documents": "ok",
		"objects":   "ok",
	}
	healthy := true

	if err := s.documents.HealthCheck(r.Context()); err != nil {
		s.logger.WithError(err).Warn("document store health check failed")
		status["documents"] = "unavailable"
		healthy = false
	}
	if err := s.objects.HealthCheck(r.Context()); err != nil {
		s.logger.WithError(err).Warn("object store health check failed")
		status["objects"] = "unavailable"
		healthy = false
	}

	if !healthy {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.Envelope{
			Success: false,
			Message: "Service unhealthy",
			Data:    status,
		})
		return
	}
	httputil.WriteSuccess(w, status)
}
