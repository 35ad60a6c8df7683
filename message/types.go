// Package message implements the per-envelope protocol components C3
// through C6: the cleartext Session, the per-(sender,recipient)
// Message, the Batch assembler that wires them together into an
// Envelope, and the envelope's deterministic content hash.
package message

import (
	"github.com/w3f-grants-archive/nolik-cli/account"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

// Entry is a single user-supplied key/value pair. Keys need not be
// unique; order is preserved exactly as the caller supplied it.
type Entry struct {
	Key   string
	Value string
}

// Attachment is a named file read from disk at compose time.
type Attachment struct {
	Name   string
	Binary []byte
}

// PlaintextMessage is the content shared, unmodified, with every
// recipient of a batch. Only the encryption key varies per pair.
type PlaintextMessage struct {
	Entries []Entry
	Files   []Attachment
}

// BatchInput is the flat, fully-resolved record the CLI parser hands to
// the composing routine. Unknown CLI options never reach this type;
// the parser rejects them before BatchInput is constructed.
type BatchInput struct {
	Sender     account.Account
	Recipients []party.Party
	Entries    []Entry
	Files      []Attachment
}
