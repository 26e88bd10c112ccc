package api

import (
	"errors"
	"net/http"

	"github.com/skinpoint/cms/pkg/httputil"
	"github.com/skinpoint/cms/pkg/storage"
)

// handleForm serves GET /admin/form?collection=X[&id=Y]: the rendered admin
// form for a content type, prefilled from the document when an id is given.
// The route is wrapped in the auth middleware.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.WriteMethodNotAllowed(w)
		return
	}

	collection := r.URL.Query().Get("collection")
	if collection == "" {
		httputil.WriteBadRequest(w, "Collection name is required")
		return
	}
	sch := s.registry.Lookup(collection)
	if sch == nil {
		httputil.WriteNotFound(w, "Unknown collection")
		return
	}

	id := r.URL.Query().Get("id")
	var existing map[string]any
	if id != "" {
		doc, err := s.documents.Get(r.Context(), collection, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				httputil.WriteNotFound(w, "Document not found")
				return
			}
			s.logger.WithError(err).WithField("collection", collection).Error("get document failed")
			httputil.WriteInternalError(w)
			return
		}
		existing = doc.Fields
	}

	html, err := s.renderer.Render(sch, id, existing)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("form render failed")
		httputil.WriteInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
