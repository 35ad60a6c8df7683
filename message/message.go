package message

import (
	"bytes"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// EncryptedMessage is one ciphertext addressed to exactly one recipient
// of the group, tagged by a (sender, recipient) fingerprint that lets
// the recipient find it without the envelope naming either key (C4).
type EncryptedMessage struct {
	Parties          string
	EncryptedMessage []byte
}

func serializePlaintext(m PlaintextMessage) []byte {
	var buf bytes.Buffer
	serializePlaintextMessage(&buf, m)
	return buf.Bytes()
}

// EncryptMessage seals a PlaintextMessage for one recipient under the
// session's secret nonce, authenticated by the sender's secret key.
func EncryptMessage(m PlaintextMessage, secretNonce cryptobox.Nonce, senderPub cryptobox.PublicKey, senderSecret cryptobox.SecretKey, recipientPub cryptobox.PublicKey) EncryptedMessage {
	plaintext := serializePlaintext(m)
	ciphertext := cryptobox.Seal(plaintext, secretNonce, recipientPub, senderSecret)
	return EncryptedMessage{
		Parties:          cryptobox.PartiesTag(senderPub, recipientPub),
		EncryptedMessage: ciphertext,
	}
}

// DecryptMessage opens an EncryptedMessage. Both the original recipient
// (using the sender's public key and its own secret) and the sender
// itself (using the recipient's public key and its own secret) derive
// the same shared secret and can call this the same way.
func DecryptMessage(em EncryptedMessage, secretNonce cryptobox.Nonce, otherPartyPub cryptobox.PublicKey, mySecret cryptobox.SecretKey) (PlaintextMessage, error) {
	plaintext, err := cryptobox.Open(em.EncryptedMessage, secretNonce, otherPartyPub, mySecret)
	if err != nil {
		return PlaintextMessage{}, errs.Crypto(errs.CodeDecryptMessage, "message authentication failed", err)
	}
	return deserializePlaintextMessage(bytes.NewReader(plaintext))
}
