// Package storage defines the persistence interfaces of the CMS backend.
//
// # Overview
//
// Two concerns are kept separate:
//
//   - DocumentStore: CRUD over named collections of schemaless JSON
//     documents. Implemented by pkg/storage/mongo for production and by
//     MemoryStore for tests.
//   - ObjectStore: publicly readable media binaries addressed by key.
//     Implemented by pkg/storage/s3.
//
// Both clients are constructed once at startup and injected; nothing in
// this package holds request-scoped state.
//
// ErrNotFound doubles as the "empty collection" signal on ListAll so the
// admin UI can render its create-first state without an error banner.
package storage
