package api

import (
	"errors"
	"net/http"

	"github.com/skinpoint/cms/pkg/auth"
	"github.com/skinpoint/cms/pkg/httputil"
	"github.com/skinpoint/cms/pkg/media"
)

// handleMedia serves POST /media: a multipart upload with a "file" part and
// optional "alt" and "folder" values. The route is wrapped in the auth
// middleware, which stores the verified identity in the request context.
func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteMethodNotAllowed(w)
		return
	}

	identity, ok := auth.FromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	// The server-wide body cap cuts oversized uploads off at the socket
	// before any parsing happens here.
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httputil.WriteBadRequest(w, "File exceeds the 10MB limit")
			return
		}
		httputil.WriteBadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	result, err := s.media.Store(r.Context(), identity.UID, media.Upload{
		Filename: header.Filename,
		Folder:   r.FormValue("folder"),
		Alt:      r.FormValue("alt"),
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNoFile):
			httputil.WriteBadRequest(w, "No file provided")
		case errors.Is(err, media.ErrFileTooLarge):
			httputil.WriteBadRequest(w, "File exceeds the 10MB limit")
		default:
			s.logger.WithError(err).Error("media upload failed")
			httputil.WriteInternalError(w)
		}
		return
	}

	if result.Partial {
		// The object is durable and reachable; only its metadata document is
		// missing. 206 tells the admin panel the URL is real but unindexed.
		httputil.WriteJSON(w, http.StatusPartialContent, httputil.Envelope{
			Success: true,
			Partial: true,
			Message: "File uploaded but metadata could not be saved to database",
			URL:     result.URL,
			Alt:     result.Alt,
			Error:   result.IndexErr.Error(),
		})
		return
	}

	httputil.WriteCreated(w, httputil.Envelope{
		ID:      result.ID,
		URL:     result.URL,
		Alt:     result.Alt,
		Message: "File uploaded successfully",
	})
}
