package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory DocumentStore used by tests and local
// development. Documents keep insertion order per collection.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	docs  map[string]map[string]any
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

// ListAll returns every document, or ErrNotFound for an empty collection.
func (m *MemoryStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[collection]
	if !ok || len(col.order) == 0 {
		return nil, ErrNotFound
	}
	docs := make([]Document, 0, len(col.order))
	for _, id := range col.order {
		docs = append(docs, Document{ID: id, Fields: copyFields(col.docs[id])})
	}
	return docs, nil
}

// Get fetches one document by id.
func (m *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	fields, ok := col.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Fields: copyFields(fields)}, nil
}

// Create stores the fields under a generated id.
func (m *MemoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.collections[collection]
	if !ok {
		col = &memoryCollection{docs: make(map[string]map[string]any)}
		m.collections[collection] = col
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	col.docs[id] = copyFields(fields)
	col.order = append(col.order, id)
	return id, nil
}

// Update merges fields into an existing document.
func (m *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	existing, ok := col.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

// Delete removes a document; missing ids report ErrNotFound.
func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := col.docs[id]; !ok {
		return ErrNotFound
	}
	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

// HealthCheck always succeeds.
func (m *MemoryStore) HealthCheck(ctx context.Context) error {
	return nil
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
