package api

import (
	"net/http"

	"github.com/skinpoint/cms/pkg/httputil"
)

// handleRevalidate serves POST /revalidate: an explicit regeneration
// request for the default path set. Delivery is best-effort, so the
// response only acknowledges that the trigger fired.
func (s *Server) handleRevalidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteMethodNotAllowed(w)
		return
	}

	var body struct {
		Paths []string `json:"paths"`
	}
	// An empty or absent body means the default paths.
	_ = httputil.ParseJSON(r, &body)

	s.trigger.Revalidate(body.Paths...)
	httputil.WriteSuccessMessage(w, "Revalidation triggered")
}
