package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/skinpoint/cms/pkg/observability"
	"github.com/skinpoint/cms/pkg/storage"
)

// MaxUploadSize is the hard per-file ceiling, enforced before any storage
// write begins.
const MaxUploadSize = 10 << 20 // 10 MB

// Collection is the document collection indexing uploaded media.
const Collection = "media"

// DefaultFolder namespaces uploads that do not name a folder.
const DefaultFolder = "media"

var (
	// ErrNoFile means the multipart body carried no file part.
	ErrNoFile = errors.New("no file provided")
	// ErrFileTooLarge means the file exceeds MaxUploadSize.
	ErrFileTooLarge = fmt.Errorf("file exceeds %d byte limit", int64(MaxUploadSize))
	// ErrStorage wraps object-store failures; the whole upload is aborted
	// and no metadata document is attempted.
	ErrStorage = errors.New("storage failure")
)

// State tracks an upload through its lifecycle.
type State string

const (
	StateReceived         State = "received"
	StateStored           State = "stored"
	StateMetadataRecorded State = "metadata_recorded"
	StateMetadataFailed   State = "metadata_failed"
)

// Upload describes one incoming file.
type Upload struct {
	Filename string
	Folder   string
	Alt      string
	Size     int64
	Content  io.Reader
}

// Result is the terminal outcome of a successful or partially successful
// upload. Partial means the object is durable and reachable at URL but its
// metadata document was not recorded; IndexErr carries that failure.
type Result struct {
	ID       string
	URL      string
	Alt      string
	Partial  bool
	IndexErr error
}

// Reconciler is the extension point for sweeping up orphaned objects left
// by partial uploads. No implementation ships yet; partial uploads are
// counted in metrics so orphans stay observable.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

// Service streams uploads to object storage and indexes them in the media
// collection.
type Service struct {
	objects   storage.ObjectStore
	documents storage.DocumentStore
	logger    *observability.Logger
	metrics   *observability.Metrics
}

// NewService creates a media upload service.
func NewService(objects storage.ObjectStore, documents storage.DocumentStore, logger *observability.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		objects:   objects,
		documents: documents,
		logger:    logger,
		metrics:   metrics,
	}
}

// Store runs the upload state machine:
//
//	received -> stored -> metadata_recorded (full success)
//	                   -> metadata_failed   (partial success)
//
// The object is written first so a recorded metadata document can never
// reference a file that does not exist; the price is the possibility of
// orphaned objects, handled by a Reconciler.
//
// The size ceiling is checked before the object-store call, so an oversized
// file causes zero storage traffic. The content is streamed straight from
// the request; no temporary file exists on any path.
func (s *Service) Store(ctx context.Context, uid string, upload Upload) (*Result, error) {
	if upload.Content == nil {
		return nil, ErrNoFile
	}
	if upload.Size > MaxUploadSize {
		s.metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrFileTooLarge
	}

	key := s.objectKey(uid, upload)
	contentType := contentTypeFor(upload.Filename)

	if err := s.objects.PutObject(ctx, key, upload.Content, contentType); err != nil {
		s.metrics.UploadsTotal.WithLabelValues("storage_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	url := s.objects.PublicURL(key)
	s.metrics.UploadBytes.Observe(float64(upload.Size))

	id, err := s.documents.Create(ctx, Collection, map[string]any{
		"url": url,
		"alt": upload.Alt,
	})
	if err != nil {
		s.logger.WithError(err).WithField("url", url).Warn("media metadata write failed after successful store")
		s.metrics.UploadsTotal.WithLabelValues("partial").Inc()
		s.metrics.PartialUploadsTotal.Inc()
		return &Result{URL: url, Alt: upload.Alt, Partial: true, IndexErr: err}, nil
	}

	s.metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return &Result{ID: id, URL: url, Alt: upload.Alt}, nil
}

// objectKey builds "folder/uid/<generated><ext>".
func (s *Service) objectKey(uid string, upload Upload) string {
	folder := upload.Folder
	if folder == "" {
		folder = DefaultFolder
	}
	ext := path.Ext(upload.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	return folder + "/" + uid + "/" + name
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(path.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
