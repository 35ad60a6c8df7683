package message

import (
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

// NewBatch runs the C5 assembler: it turns a validated BatchInput and a
// caller-supplied secret nonce into a complete, self-contained
// Envelope. The secret nonce is threaded in by the caller (rather than
// generated here) so ComputeHash can be recomputed independently of a
// build and still agree with envelope.Hash (P4).
func NewBatch(input BatchInput, secretNonce cryptobox.Nonce) (Envelope, error) {
	if len(input.Entries) == 0 && len(input.Files) == 0 {
		return Envelope{}, errs.Input(errs.CodeRequiredKeysMissing, "message has no entries or files", nil)
	}

	group, err := party.NewGroup(input.Sender.Party(), input.Recipients)
	if err != nil {
		return Envelope{}, err
	}

	brokerPub, brokerSecret, err := cryptobox.GenerateKeyPair()
	if err != nil {
		return Envelope{}, err
	}
	publicNonce, err := cryptobox.NewNonce()
	if err != nil {
		return Envelope{}, err
	}

	session := Session{SecretNonce: secretNonce, Group: group}

	all := group.All()
	sessions := make([]EncryptedSession, len(all))
	for i, p := range all {
		sessions[i] = session.Encrypt(publicNonce, brokerSecret, p.PublicKey)
	}

	messages := make([]EncryptedMessage, len(group.Recipients))
	plaintext := PlaintextMessage{Entries: input.Entries, Files: input.Files}
	for i, recipient := range group.Recipients {
		messages[i] = EncryptMessage(plaintext, secretNonce, input.Sender.Public, input.Sender.Secret, recipient.PublicKey)
	}

	envelope := Envelope{
		Broker:   brokerPub,
		Nonce:    publicNonce,
		Sessions: sessions,
		Messages: messages,
	}
	envelope.Hash = ComputeHash(input, secretNonce)

	// brokerSecret goes out of scope here and is never stored on the
	// envelope (I5); nothing below this line references it.
	return envelope, nil
}
