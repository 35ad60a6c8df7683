// Package memory is an in-process content-addressed store, used for
// tests and dev mode where a real content-addressed backend isn't
// available.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Store implements store.Store over an in-memory map. Content-ids are
// random UUIDs rather than a hash of the content, since the binding
// between an envelope and its content is already carried by the
// envelope's own hash field; the store's id only needs to be unique.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New creates an empty in-memory content store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Put(ctx context.Context, data []byte) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[id] = cp

	return id, nil
}

func (s *Store) Get(ctx context.Context, contentID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[contentID]
	if !ok {
		return nil, errs.Storage(errs.CodeGetFailed, "content not found: "+contentID, nil)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}
