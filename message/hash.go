package message

import (
	"bytes"
	"encoding/binary"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
)

// ComputeHash is the C6 batch fingerprint: a stable 256-bit digest over
// the plaintext inputs and the secret nonce only. It deliberately
// excludes the broker keypair, the public nonce, any ciphertext, and
// session/message ordering, so two composes of identical content
// produce the same hash even though their envelopes differ (P4, P5).
func ComputeHash(input BatchInput, secretNonce cryptobox.Nonce) [32]byte {
	var buf bytes.Buffer

	senderPub := input.Sender.Public
	buf.Write(senderPub[:])

	binary.Write(&buf, binary.BigEndian, uint32(len(input.Recipients)))
	for _, r := range input.Recipients {
		buf.Write(r.PublicKey[:])
	}

	binary.Write(&buf, binary.BigEndian, uint32(len(input.Entries)))
	for _, e := range input.Entries {
		putString(&buf, e.Key)
		putString(&buf, e.Value)
	}

	binary.Write(&buf, binary.BigEndian, uint32(len(input.Files)))
	for _, f := range input.Files {
		putString(&buf, f.Name)
		contentHash := cryptobox.Hash256(f.Binary)
		buf.Write(contentHash[:])
	}

	buf.Write(secretNonce[:])

	return cryptobox.Hash256(buf.Bytes())
}
