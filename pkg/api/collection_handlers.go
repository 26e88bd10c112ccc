package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/skinpoint/cms/pkg/httputil"
	"github.com/skinpoint/cms/pkg/schema"
	"github.com/skinpoint/cms/pkg/storage"
)

// handleCollection serves /collection?collection=X: GET lists every
// document, POST creates one.
func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")
	if collection == "" {
		httputil.WriteBadRequest(w, "Collection name is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listDocuments(w, r, collection)
	case http.MethodPost:
		s.createDocument(w, r, collection)
	default:
		httputil.WriteMethodNotAllowed(w)
	}
}

// handleDocument serves /collection/put?collection=X&id=Y: GET fetches one
// document, PUT and PATCH merge an update, DELETE removes it. Every method
// requires authentication.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")
	if collection == "" {
		httputil.WriteBadRequest(w, "Collection name is required")
		return
	}

	if _, ok := s.authenticate(w, r); !ok {
		return
	}

	id := r.URL.Query().Get("id")

	switch r.Method {
	case http.MethodGet:
		s.getDocument(w, r, collection, id)
	case http.MethodPut, http.MethodPatch:
		s.updateDocument(w, r, collection, id)
	case http.MethodDelete:
		s.deleteDocument(w, r, collection, id)
	default:
		httputil.WriteMethodNotAllowed(w)
	}
}

// listDocuments is public: the frontend reads published content without a
// token.
func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request, collection string) {
	docs, err := s.documents.ListAll(r.Context(), collection)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httputil.WriteNotFound(w, fmt.Sprintf("No %ss found", collection))
			return
		}
		s.logger.WithError(err).WithField("collection", collection).Error("list documents failed")
		httputil.WriteInternalError(w)
		return
	}

	data := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		data = append(data, documentJSON(doc))
	}
	httputil.WriteSuccess(w, data)
}

func (s *Server) createDocument(w http.ResponseWriter, r *http.Request, collection string) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}

	var payload map[string]any
	if !httputil.ParseJSONOrError(w, r, &payload) {
		return
	}

	// The store assigns identifiers; a client-sent id never reaches it.
	delete(payload, "id")

	if sch := s.registry.Lookup(collection); sch != nil {
		normalized, fieldErrs := schema.Validate(sch, payload)
		if fieldErrs != nil {
			httputil.WriteValidationErrors(w, fieldErrs)
			return
		}
		payload = normalized
	}

	id, err := s.documents.Create(r.Context(), collection, payload)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("create document failed")
		httputil.WriteInternalError(w)
		return
	}

	s.trigger.Revalidate()
	httputil.WriteCreated(w, httputil.Envelope{
		ID:      id,
		Message: "Document created successfully",
	})
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request, collection, id string) {
	if id == "" {
		httputil.WriteBadRequest(w, "Document ID is required")
		return
	}

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

	httputil.WriteSuccess(w, documentJSON(*doc))
}

func (s *Server) updateDocument(w http.ResponseWriter, r *http.Request, collection, id string) {
	if id == "" {
		httputil.WriteBadRequest(w, "Document ID is required for updates")
		return
	}

	var payload map[string]any
	if !httputil.ParseJSONOrError(w, r, &payload) {
		return
	}
	delete(payload, "id")

	// Updates merge into the stored document, so only the supplied fields
	// are validated.
	if sch := s.registry.Lookup(collection); sch != nil {
		normalized, fieldErrs := schema.ValidatePartial(sch, payload)
		if fieldErrs != nil {
			httputil.WriteValidationErrors(w, fieldErrs)
			return
		}
		payload = normalized
	}

	if err := s.documents.Update(r.Context(), collection, id, payload); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httputil.WriteNotFound(w, fmt.Sprintf("Document with ID %s not found", id))
			return
		}
		s.logger.WithError(err).WithField("collection", collection).Error("update document failed")
		httputil.WriteInternalError(w)
		return
	}

	s.trigger.Revalidate()
	httputil.WriteJSON(w, http.StatusOK, httputil.Envelope{
		Success: true,
		ID:      id,
		Message: "Document updated successfully",
	})
}

// deleteDocument is idempotent: deleting an id that is already gone still
// reports success.
func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request, collection, id string) {
	if id == "" {
		httputil.WriteBadRequest(w, "Document ID is required")
		return
	}

	if err := s.documents.Delete(r.Context(), collection, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.WithError(err).WithField("collection", collection).Error("delete document failed")
		httputil.WriteInternalError(w)
		return
	}

	s.trigger.Revalidate()
	httputil.WriteSuccessMessage(w, "Document deleted successfully")
}

// documentJSON flattens a document into the wire shape: the id beside the
// stored fields.
func documentJSON(doc storage.Document) map[string]any {
	out := make(map[string]any, len(doc.Fields)+1)
	for k, v := range doc.Fields {
		out[k] = v
	}
	out["id"] = doc.ID
	return out
}
