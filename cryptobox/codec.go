package cryptobox

import (
	"encoding/base64"

	"github.com/mr-tron/base58"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// EncodeKey renders a public or secret key as base64, the wire encoding
// used inside Entry/Attachment payloads.
func EncodeKey(key [KeySize]byte) string {
	return base64.StdEncoding.EncodeToString(key[:])
}

// DecodeKey parses a base64-encoded 32-byte key.
func DecodeKey(s string) ([KeySize]byte, error) {
	var out [KeySize]byte
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return out, errs.Crypto(errs.CodeInvalidEncoding, "invalid base64 key", err)
	}
	if len(raw) != KeySize {
		return out, errs.Crypto(errs.CodeInvalidEncoding, "key has wrong length", nil).
			WithDetail("length", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// EncodeBytes renders an arbitrary byte string as base64, used for
// ciphertext fields in the envelope's canonical form.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes parses a base64-encoded byte string of any length.
func DecodeBytes(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Crypto(errs.CodeInvalidEncoding, "invalid base64 data", err)
	}
	return raw, nil
}

// EncodeNonce renders a nonce as base64.
func EncodeNonce(n Nonce) string {
	return base64.StdEncoding.EncodeToString(n[:])
}

// DecodeNonce parses a base64-encoded 24-byte nonce.
func DecodeNonce(s string) (Nonce, error) {
	var out Nonce
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return out, errs.Crypto(errs.CodeInvalidEncoding, "invalid base64 nonce", err)
	}
	if len(raw) != NonceSize {
		return out, errs.Crypto(errs.CodeInvalidEncoding, "nonce has wrong length", nil).
			WithDetail("length", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// Address renders a public key as the base58 address used on the ledger
// and in account aliases, matching the original CLI's bs58 encoding.
func Address(pub PublicKey) string {
	return base58.Encode(pub[:])
}

// ParseAddress decodes a base58 address back into a public key.
func ParseAddress(addr string) (PublicKey, error) {
	var out PublicKey
	raw, err := base58.Decode(addr)
	if err != nil {
		return out, errs.Input(errs.CodeInvalidAddress, "address is not valid base58", err)
	}
	if len(raw) != KeySize {
		return out, errs.Input(errs.CodeInvalidAddress, "address has wrong length", nil).
			WithDetail("length", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
