package submissionstore

import "context"

// Store persists the per-recipient submission state machine. A
// caller composes one envelope, then submits once per recipient; each
// submit call records or advances one Submission row keyed by
// (content_id, recipient).
type Store interface {
	// Create records a fresh submission in StatusInit.
	Create(ctx context.Context, sub *Submission) error

	// Get retrieves a submission by content-id and recipient.
	Get(ctx context.Context, contentID, recipient string) (*Submission, error)

	// MarkSubmitted transitions INIT -> SUBMITTED, recording the
	// collaborator's extrinsic reference for later polling.
	MarkSubmitted(ctx context.Context, contentID, recipient, extrinsicRef string) error

	// MarkConfirmed transitions SUBMITTED -> CONFIRMED.
	MarkConfirmed(ctx context.Context, contentID, recipient string) error

	// MarkRejected transitions SUBMITTED -> REJECTED{reason}.
	MarkRejected(ctx context.Context, contentID, recipient string, reason RejectReason) error

	// ListBySender lists every submission a sender has issued, most
	// recent first, for a status dashboard or CLI `nolik status`.
	ListBySender(ctx context.Context, sender string, limit, offset int) ([]*Submission, error)

	// ListPending lists submissions still in StatusSubmitted, the set
	// a caller must re-poll for a terminal event after a restart.
	ListPending(ctx context.Context) ([]*Submission, error)

	// Close releases any underlying connection.
	Close() error

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}
