// Package memory is an in-process submissionstore.Store, used for tests
// and single-process dev mode where a Postgres instance isn't available.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/store/submissionstore"
)

// Store implements submissionstore.Store over an in-memory map guarded
// by a single mutex; fine for CLI-process lifetimes and tests.
type Store struct {
	mu   sync.RWMutex
	subs map[string]*submissionstore.Submission
}

// New creates an empty in-memory submission store.
func New() *Store {
	return &Store{subs: make(map[string]*submissionstore.Submission)}
}

func key(contentID, recipient string) string {
	return contentID + "|" + recipient
}

func (s *Store) Create(ctx context.Context, sub *submissionstore.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(sub.ContentID, sub.Recipient)
	if _, exists := s.subs[k]; exists {
		return errs.Storage(errs.CodePutFailed, fmt.Sprintf("submission already exists for %s", k), nil)
	}

	cp := *sub
	cp.Status = submissionstore.StatusInit
	s.subs[k] = &cp
	return nil
}

func (s *Store) Get(ctx context.Context, contentID, recipient string) (*submissionstore.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[key(contentID, recipient)]
	if !ok {
		return nil, errs.Storage(errs.CodeGetFailed, "submission not found", nil)
	}
	cp := *sub
	return &cp, nil
}

func (s *Store) MarkSubmitted(ctx context.Context, contentID, recipient, extrinsicRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[key(contentID, recipient)]
	if !ok {
		return errs.Storage(errs.CodeGetFailed, "submission not found", nil)
	}
	sub.Status = submissionstore.StatusSubmitted
	sub.ExtrinsicRef = extrinsicRef
	sub.UpdatedAt = time.Now()
	return nil
}

func (s *Store) MarkConfirmed(ctx context.Context, contentID, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[key(contentID, recipient)]
	if !ok {
		return errs.Storage(errs.CodeGetFailed, "submission not found", nil)
	}
	sub.Status = submissionstore.StatusConfirmed
	sub.UpdatedAt = time.Now()
	return nil
}

func (s *Store) MarkRejected(ctx context.Context, contentID, recipient string, reason submissionstore.RejectReason) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[key(contentID, recipient)]
	if !ok {
		return errs.Storage(errs.CodeGetFailed, "submission not found", nil)
	}
	sub.Status = submissionstore.StatusRejected
	sub.RejectReason = reason
	sub.UpdatedAt = time.Now()
	return nil
}

func (s *Store) ListBySender(ctx context.Context, sender string, limit, offset int) ([]*submissionstore.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []*submissionstore.Submission
	for _, sub := range s.subs {
		if sub.Sender == sender {
			cp := *sub
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*submissionstore.Submission{}, nil
	}
	end := offset + limit
	if end > len(all) || limit <= 0 {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *Store) ListPending(ctx context.Context) ([]*submissionstore.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []*submissionstore.Submission
	for _, sub := range s.subs {
		if sub.Status == submissionstore.StatusSubmitted {
			cp := *sub
			pending = append(pending, &cp)
		}
	}
	return pending, nil
}

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return nil }
