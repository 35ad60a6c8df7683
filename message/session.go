package message

import (
	"bytes"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

const recipientHintDomain = "nolik-session-hint-v1"

// Session is the cleartext per-envelope state shared with every party
// (C3): the secret nonce that keys every per-pair message, and the full
// group so every party learns who else is addressed.
type Session struct {
	SecretNonce cryptobox.Nonce
	Group       party.Group
}

// EncryptedSession is one party's encrypted copy of the Session, keyed
// for lookup by RecipientHint without disclosing which party it
// belongs to.
type EncryptedSession struct {
	RecipientHint    string
	EncryptedSession []byte
}

// RecipientHint computes the short, one-way lookup hint for a party
// under a given envelope: a domain-separated hash of the party's
// public key and the envelope's public nonce (§9 open question,
// resolved in favor of including the hint).
func RecipientHint(partyPub cryptobox.PublicKey, publicNonce cryptobox.Nonce) string {
	sum := cryptobox.Hash256([]byte(recipientHintDomain), partyPub[:], publicNonce[:])
	return cryptobox.EncodeKey([32]byte(sum))
}

func serializeSession(s Session) []byte {
	var buf bytes.Buffer
	serializeGroup(&buf, s.Group)
	buf.Write(s.SecretNonce[:])
	return buf.Bytes()
}

func deserializeSession(data []byte) (Session, error) {
	r := bytes.NewReader(data)
	group, err := deserializeGroup(r)
	if err != nil {
		return Session{}, err
	}
	var nonce cryptobox.Nonce
	if n, err := readExact(r, nonce[:]); err != nil || n != cryptobox.NonceSize {
		return Session{}, errs.Crypto(errs.CodeDecryptSession, "decoded session nonce is malformed", err)
	}
	return Session{SecretNonce: nonce, Group: group}, nil
}

func readExact(r *bytes.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// Encrypt seals this Session for one party using the broker→party
// channel: (broker_secret, party_public) under the envelope's public
// nonce.
func (s Session) Encrypt(publicNonce cryptobox.Nonce, brokerSecret cryptobox.SecretKey, partyPub cryptobox.PublicKey) EncryptedSession {
	plaintext := serializeSession(s)
	ciphertext := cryptobox.Seal(plaintext, publicNonce, partyPub, brokerSecret)
	return EncryptedSession{
		RecipientHint:    RecipientHint(partyPub, publicNonce),
		EncryptedSession: ciphertext,
	}
}

// Decrypt opens an EncryptedSession as the holder of mySecret, against
// the envelope's known broker public key and public nonce. Callers try
// every encrypted session in the envelope and keep the one that
// succeeds (§7: non-matching attempts are expected and filtered
// silently, not surfaced as user errors).
func (es EncryptedSession) Decrypt(publicNonce cryptobox.Nonce, brokerPub cryptobox.PublicKey, mySecret cryptobox.SecretKey) (Session, error) {
	plaintext, err := cryptobox.Open(es.EncryptedSession, publicNonce, brokerPub, mySecret)
	if err != nil {
		return Session{}, errs.Crypto(errs.CodeDecryptSession, "session authentication failed", err)
	}
	return deserializeSession(plaintext)
}
