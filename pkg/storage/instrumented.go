package storage

import (
	"context"
	"errors"
	"time"

	"github.com/skinpoint/cms/pkg/observability"
)

// InstrumentedStore wraps a DocumentStore and records every call in the
// store operation metrics. ErrNotFound is a signal, not a failure, and is
// recorded as a successful call.
type InstrumentedStore struct {
	inner   DocumentStore
	metrics *observability.Metrics
}

// NewInstrumentedStore wraps inner with metric recording.
func NewInstrumentedStore(inner DocumentStore, metrics *observability.Metrics) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, metrics: metrics}
}

func (s *InstrumentedStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	start := time.Now()
	docs, err := s.inner.ListAll(ctx, collection)
	s.observe("list", collection, err, start)
	return docs, err
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	start := time.Now()
	doc, err := s.inner.Get(ctx, collection, id)
	s.observe("get", collection, err, start)
	return doc, err
}

func (s *InstrumentedStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	start := time.Now()
	id, err := s.inner.Create(ctx, collection, fields)
	s.observe("create", collection, err, start)
	return id, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	start := time.Now()
	err := s.inner.Update(ctx, collection, id, fields)
	s.observe("update", collection, err, start)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, collection, id)
	s.observe("delete", collection, err, start)
	return err
}

func (s *InstrumentedStore) HealthCheck(ctx context.Context) error {
	return s.inner.HealthCheck(ctx)
}

func (s *InstrumentedStore) observe(operation, collection string, err error, start time.Time) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.metrics.ObserveStoreOperation(operation, collection, err, time.Since(start))
}
