// Package media handles file uploads to object storage and their metadata
// index in the document store.
//
// An upload moves through a small state machine: received, stored, then
// either metadata_recorded (full success) or metadata_failed (partial
// success, where the object is live at its public URL but absent from the
// media library index until reconciled).
package media
