// Package party models the participants of a batch: a sender and the
// distinct recipients addressed alongside them (C2).
package party

import (
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Party is a single addressable participant, identified by its box
// public key.
type Party struct {
	PublicKey cryptobox.PublicKey
}

// Address returns the base58 address used to reference this party on
// the ledger and in account aliases.
func (p Party) Address() string {
	return cryptobox.Address(p.PublicKey)
}

// Group is the ordered list of participants in one batch: the sender
// first, followed by one or more distinct recipients (I1).
type Group struct {
	Sender     Party
	Recipients []Party
}

// NewGroup validates and constructs a Group from a sender and recipient
// list, enforcing I1: recipients must be non-empty, distinct from each
// other, and distinct from the sender.
func NewGroup(sender Party, recipients []Party) (Group, error) {
	if len(recipients) == 0 {
		return Group{}, errs.Input(errs.CodeRequiredKeysMissing, "group requires at least one recipient", nil)
	}

	seen := make(map[cryptobox.PublicKey]struct{}, len(recipients)+1)
	seen[sender.PublicKey] = struct{}{}

	for _, r := range recipients {
		if _, dup := seen[r.PublicKey]; dup {
			return Group{}, errs.Input(errs.CodeDuplicateRecipient, "recipient duplicates sender or another recipient", nil).
				WithDetail("address", r.Address())
		}
		seen[r.PublicKey] = struct{}{}
	}

	return Group{Sender: sender, Recipients: recipients}, nil
}

// All returns sender and recipients as one ordered slice, sender first,
// the canonical iteration order for per-party session/message encryption.
func (g Group) All() []Party {
	out := make([]Party, 0, len(g.Recipients)+1)
	out = append(out, g.Sender)
	out = append(out, g.Recipients...)
	return out
}
