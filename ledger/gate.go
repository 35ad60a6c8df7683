package ledger

import (
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Lists is the per-recipient access-control state the gate checks
// against: a recipient's blacklist and whitelist of sender addresses.
type Lists struct {
	Blacklist map[cryptobox.PublicKey]struct{}
	Whitelist map[cryptobox.PublicKey]struct{}
}

// Check implements the access-control gate (C7) as a pure function,
// independent of how the lists are stored or fetched:
//
//   - sender in blacklist(recipient) -> CodeAddressInBlacklist
//   - whitelist(recipient) non-empty and sender not in it -> CodeAddressNotInWhitelist
//   - otherwise -> nil
func Check(lists Lists, sender cryptobox.PublicKey) error {
	if _, blocked := lists.Blacklist[sender]; blocked {
		return errs.Node(errs.CodeAddressInBlacklist, "sender is blacklisted by recipient", nil)
	}

	if len(lists.Whitelist) > 0 {
		if _, allowed := lists.Whitelist[sender]; !allowed {
			return errs.Node(errs.CodeAddressNotInWhitelist, "sender is not in recipient's whitelist", nil)
		}
	}

	return nil
}
