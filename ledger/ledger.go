// Package ledger defines the permissioned blockchain collaborator: the
// access-control gate (C7), the submission state machine, and the
// events a submit call can observe.
package ledger

import (
	"context"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
)

// Event is one observation from the ledger after a submit call.
type Event interface {
	isEvent()
}

// MessageSent is emitted when a submission is accepted.
type MessageSent struct {
	From      cryptobox.PublicKey
	To        cryptobox.PublicKey
	ContentID string
}

func (MessageSent) isEvent() {}

// AddressInBlacklist is emitted when the sender is blacklisted by the
// recipient.
type AddressInBlacklist struct {
	From cryptobox.PublicKey
	To   cryptobox.PublicKey
}

func (AddressInBlacklist) isEvent() {}

// AddressNotInWhitelist is emitted when the recipient maintains a
// non-empty whitelist that excludes the sender.
type AddressNotInWhitelist struct {
	From cryptobox.PublicKey
	To   cryptobox.PublicKey
}

func (AddressNotInWhitelist) isEvent() {}

// BalanceTransfer is emitted alongside a successful submission when the
// ledger charges a message fee.
type BalanceTransfer struct {
	From   cryptobox.PublicKey
	To     cryptobox.PublicKey
	Amount uint64
}

func (BalanceTransfer) isEvent() {}

// Submission is the per-recipient request the core hands to the ledger
// collaborator: "this sender put this content at this content-id for
// this recipient."
type Submission struct {
	Sender    cryptobox.PublicKey
	Recipient cryptobox.PublicKey
	ContentID string
}

// Client is the ledger collaborator the core submits against. Exactly
// one suspension point per recipient: Submit blocks until the
// extrinsic is included and the corresponding event is observed, or
// returns a NodeError.
type Client interface {
	// Submit applies the access-control gate (C7) and, on acceptance,
	// emits a MessageSent event. Rejections surface as the matching
	// NodeError code (errs.CodeAddressInBlacklist,
	// errs.CodeAddressNotInWhitelist, errs.CodeWalletBalance,
	// errs.CodeExtrinsicFailed, errs.CodeEventTimeout,
	// errs.CodeTransport) rather than as an Event.
	Submit(ctx context.Context, sub Submission) (Event, error)

	// UpdateWhitelist adds or removes an address from the caller's own
	// whitelist.
	UpdateWhitelist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error

	// UpdateBlacklist adds or removes an address from the caller's own
	// blacklist.
	UpdateBlacklist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error
}
