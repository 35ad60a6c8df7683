package message

import (
	"encoding/json"
	"sort"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Envelope is the full published artifact (IPFS payload): the broker's
// public key, the public nonce, one encrypted session per party, one
// encrypted message per recipient, and the content hash binding it to
// the plaintext inputs it was built from.
type Envelope struct {
	Broker   cryptobox.PublicKey
	Nonce    cryptobox.Nonce
	Sessions []EncryptedSession
	Messages []EncryptedMessage
	Hash     [32]byte
}

// envelopeJSON is the canonical wire form (§6): fixed field order, no
// maps, byte strings base64-encoded. Go's encoding/json preserves
// struct field declaration order for objects, so that order alone is
// sufficient to satisfy the canonical ordering requirement.
type envelopeJSON struct {
	Hash     string        `json:"hash"`
	Broker   string        `json:"broker"`
	Nonce    string        `json:"nonce"`
	Sessions []sessionJSON `json:"sessions"`
	Messages []messageJSON `json:"messages"`
}

type sessionJSON struct {
	RecipientHint    string `json:"recipient_hint"`
	EncryptedSession string `json:"encrypted_session"`
}

type messageJSON struct {
	Parties          string `json:"parties"`
	EncryptedMessage string `json:"encrypted_message"`
}

// MarshalCanonical renders the envelope in the stable form the store
// collaborator persists: sessions sorted by recipient_hint and messages
// sorted by parties, both byte-lexicographic over the decoded tag, per
// §5's ordering guarantee.
func (e Envelope) MarshalCanonical() ([]byte, error) {
	sessions := append([]EncryptedSession(nil), e.Sessions...)
	sort.Slice(sessions, func(i, j int) bool {
		return lessBase64(sessions[i].RecipientHint, sessions[j].RecipientHint)
	})

	messages := append([]EncryptedMessage(nil), e.Messages...)
	sort.Slice(messages, func(i, j int) bool {
		return lessBase64(messages[i].Parties, messages[j].Parties)
	})

	out := envelopeJSON{
		Hash:     cryptobox.EncodeKey(e.Hash),
		Broker:   cryptobox.EncodeKey([32]byte(e.Broker)),
		Nonce:    cryptobox.EncodeNonce(e.Nonce),
		Sessions: make([]sessionJSON, len(sessions)),
		Messages: make([]messageJSON, len(messages)),
	}
	for i, s := range sessions {
		out.Sessions[i] = sessionJSON{
			RecipientHint:    s.RecipientHint,
			EncryptedSession: cryptobox.EncodeBytes(s.EncryptedSession),
		}
	}
	for i, m := range messages {
		out.Messages[i] = messageJSON{
			Parties:          m.Parties,
			EncryptedMessage: cryptobox.EncodeBytes(m.EncryptedMessage),
		}
	}

	return json.Marshal(out)
}

// UnmarshalEnvelope parses the canonical form produced by
// MarshalCanonical back into an Envelope.
func UnmarshalEnvelope(data []byte) (Envelope, error) {
	var in envelopeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return Envelope{}, errs.Crypto(errs.CodeInvalidEncoding, "envelope is not valid canonical JSON", err)
	}

	hash, err := cryptobox.DecodeKey(in.Hash)
	if err != nil {
		return Envelope{}, err
	}
	broker, err := cryptobox.DecodeKey(in.Broker)
	if err != nil {
		return Envelope{}, err
	}
	nonce, err := cryptobox.DecodeNonce(in.Nonce)
	if err != nil {
		return Envelope{}, err
	}

	sessions := make([]EncryptedSession, len(in.Sessions))
	for i, s := range in.Sessions {
		raw, err := cryptobox.DecodeBytes(s.EncryptedSession)
		if err != nil {
			return Envelope{}, err
		}
		sessions[i] = EncryptedSession{RecipientHint: s.RecipientHint, EncryptedSession: raw}
	}

	messages := make([]EncryptedMessage, len(in.Messages))
	for i, m := range in.Messages {
		raw, err := cryptobox.DecodeBytes(m.EncryptedMessage)
		if err != nil {
			return Envelope{}, err
		}
		messages[i] = EncryptedMessage{Parties: m.Parties, EncryptedMessage: raw}
	}

	return Envelope{
		Broker:   cryptobox.PublicKey(broker),
		Nonce:    nonce,
		Sessions: sessions,
		Messages: messages,
		Hash:     hash,
	}, nil
}

func lessBase64(a, b string) bool {
	ra, errA := cryptobox.DecodeBytes(a)
	rb, errB := cryptobox.DecodeBytes(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return string(ra) < string(rb)
}
