// Package store provides the content-addressed collaborator an envelope
// is handed to after compose: an opaque Put/Get by content-id, with no
// knowledge of the envelope's cryptographic structure.
package store

import "context"

// Store is the suspension point between compose and submit: the core
// hands it an opaque blob (the canonical envelope serialization) and
// gets back a content-id to submit to the ledger.
type Store interface {
	// Put stores data and returns its content-id.
	Put(ctx context.Context, data []byte) (contentID string, err error)

	// Get retrieves data by content-id.
	Get(ctx context.Context, contentID string) ([]byte, error)
}
