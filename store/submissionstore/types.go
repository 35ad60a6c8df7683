// Package submissionstore tracks the per-recipient submission state
// machine (INIT -> SUBMITTED -> CONFIRMED | REJECTED{reason}) across
// process restarts, so a caller can resume polling for an event after
// a crash instead of resubmitting blindly.
package submissionstore

import "time"

// Status is one state of the per-recipient submission state machine.
type Status string

const (
	StatusInit      Status = "init"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// RejectReason names the terminal-failure variant of a Rejected
// submission, matching the NodeError codes a ledger collaborator can
// surface for a submit call.
type RejectReason string

const (
	ReasonInBlacklist    RejectReason = "in_blacklist"
	ReasonNotInWhitelist RejectReason = "not_in_whitelist"
	ReasonWalletBalance  RejectReason = "wallet_balance"
	ReasonTransport      RejectReason = "transport"
)

// Submission is one recipient's progress through the state machine for
// one envelope. A sender submits once per recipient referencing the
// same content-id, so the pair (ContentID, Recipient) is the key.
type Submission struct {
	ContentID    string       `json:"content_id"`
	Sender       string       `json:"sender"`
	Recipient    string       `json:"recipient"`
	Status       Status       `json:"status"`
	RejectReason RejectReason `json:"reject_reason,omitempty"`
	ExtrinsicRef string       `json:"extrinsic_ref,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
