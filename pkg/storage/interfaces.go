package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound signals a missing document or an empty collection. Handlers
// translate it to a 404 or an empty-state response; it is never a hard
// failure on its own.
var ErrNotFound = errors.New("not found")

// Document is one record in a collection: arbitrary JSON fields plus the
// store-assigned identifier.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentStore performs CRUD against named collections.
//
// Create assigns the identifier; caller-supplied ids are not accepted.
// Update merges the partial payload into the existing document ($set
// semantics, untouched fields survive) and requires the document to exist.
// Delete of a nonexistent id returns ErrNotFound, which callers may ignore.
type DocumentStore interface {
	ListAll(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	HealthCheck(ctx context.Context) error
}

// ObjectStore holds uploaded media binaries. Objects are publicly readable
// once written; PublicURL derives the stable URL for a key without a
// network call.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, content io.Reader, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
	HealthCheck(ctx context.Context) error
}

// Config for the storage backends.
type Config struct {
	// MongoDB config
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	// S3 config
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
	// S3PublicBaseURL overrides the derived public URL prefix, for
	// deployments serving objects through a CDN.
	S3PublicBaseURL string
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MongoURI:     "mongodb://localhost:27017",
		MongoDB:      "cms",
		MongoTimeout: 10 * time.Second,
		S3Region:     "us-east-1",
	}
}
