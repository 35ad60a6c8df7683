// Package memory is an in-process ledger.Client, used for tests and
// dev mode: it applies the access-control gate synchronously and
// never actually suspends.
package memory

import (
	"context"
	"sync"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/ledger"
)

// Client is an in-memory ledger.Client. Each recipient owns its own
// blacklist/whitelist, matching the per-recipient access-control model
// in §4.7.
type Client struct {
	mu     sync.RWMutex
	lists  map[cryptobox.PublicKey]ledger.Lists
	events []ledger.Event
}

// New creates an empty in-memory ledger.
func New() *Client {
	return &Client{lists: make(map[cryptobox.PublicKey]ledger.Lists)}
}

func (c *Client) listsFor(recipient cryptobox.PublicKey) ledger.Lists {
	l, ok := c.lists[recipient]
	if !ok {
		return ledger.Lists{}
	}
	return l
}

// Submit applies the access-control gate and, on acceptance, records a
// MessageSent event.
func (c *Client) Submit(ctx context.Context, sub ledger.Submission) (ledger.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ledger.Check(c.listsFor(sub.Recipient), sub.Sender); err != nil {
		return nil, err
	}

	ev := ledger.MessageSent{From: sub.Sender, To: sub.Recipient, ContentID: sub.ContentID}
	c.events = append(c.events, ev)
	return ev, nil
}

// UpdateWhitelist adds or removes an address from owner's whitelist.
func (c *Client) UpdateWhitelist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.listsFor(owner)
	if l.Whitelist == nil {
		l.Whitelist = make(map[cryptobox.PublicKey]struct{})
	}
	if add {
		l.Whitelist[address] = struct{}{}
	} else {
		delete(l.Whitelist, address)
	}
	c.lists[owner] = l
	return nil
}

// UpdateBlacklist adds or removes an address from owner's blacklist.
func (c *Client) UpdateBlacklist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.listsFor(owner)
	if l.Blacklist == nil {
		l.Blacklist = make(map[cryptobox.PublicKey]struct{})
	}
	if add {
		l.Blacklist[address] = struct{}{}
	} else {
		delete(l.Blacklist, address)
	}
	c.lists[owner] = l
	return nil
}

// Events returns every event recorded so far, for test assertions.
func (c *Client) Events() []ledger.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]ledger.Event, len(c.events))
	copy(cp, c.events)
	return cp
}
