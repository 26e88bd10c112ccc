// Package api implements the HTTP surface of the CMS backend.
//
// # Overview
//
// The server exposes the content API the admin panel and the public
// frontend share:
//
//	GET/POST                 /collection?collection=X
//	GET/PUT/PATCH/DELETE     /collection/put?collection=X&id=Y
//	POST                     /media
//	POST                     /revalidate
//	GET                      /admin/form?collection=X[&id=Y]
//	GET                      /healthz
//	GET                      /metrics
//
// Listing a collection is public; every other content operation requires
// a verified bearer token. Responses share one JSON envelope: success
// responses carry data, id or url, failures carry a message and, for
// validation failures, the per-field error list.
//
// Method dispatch happens inside each handler rather than through
// per-method routes, so an unsupported method yields the JSON 405
// envelope like every other error.
package api
