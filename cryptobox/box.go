// Package cryptobox implements the combined-mode authenticated public-key
// box primitive (C1): a single encrypt/decrypt operation keyed on a
// sender's secret key and a recipient's public key, producing ciphertext
// that embeds its own authentication tag. It is the only place in this
// module that talks to golang.org/x/crypto directly.
package cryptobox

import (
	"crypto/rand"
	"io"
	"time"

	"golang.org/x/crypto/nacl/box"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/internal/metrics"
)

// KeySize is the length in bytes of a box public or secret key.
const KeySize = 32

// NonceSize is the length in bytes of a box nonce.
const NonceSize = 24

// PublicKey is a 32-byte Curve25519 public key.
type PublicKey [KeySize]byte

// SecretKey is a 32-byte Curve25519 secret key.
type SecretKey [KeySize]byte

// Nonce is a 24-byte one-time value. Spec requires callers to generate a
// fresh nonce per encryption; reuse is a caller bug, not something this
// package can detect.
type Nonce [NonceSize]byte

// GenerateKeyPair creates a fresh Curve25519 key pair suitable for both
// account encryption identities and the one-shot broker keypair used to
// wrap a Session.
func GenerateKeyPair() (PublicKey, SecretKey, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		metrics.CryptoErrors.WithLabelValues("generate_keypair", string(errs.CodeCryptoBackend)).Inc()
		return PublicKey{}, SecretKey{}, errs.Crypto(errs.CodeCryptoBackend, "generate key pair", err)
	}
	metrics.CryptoOperations.WithLabelValues("generate_keypair").Inc()
	return PublicKey(*pub), SecretKey(*priv), nil
}

// NewNonce draws a fresh random nonce.
func NewNonce() (Nonce, error) {
	var n Nonce
	if _, err := io.ReadFull(rand.Reader, n[:]); err != nil {
		return Nonce{}, errs.Crypto(errs.CodeCryptoBackend, "generate nonce", err)
	}
	return n, nil
}

// Seal encrypts plaintext for recipientPub, authenticated under senderPriv,
// using the given nonce. The returned ciphertext carries its own
// Poly1305 tag (combined mode): there is no separate MAC to track.
func Seal(plaintext []byte, nonce Nonce, recipientPub PublicKey, senderPriv SecretKey) []byte {
	start := time.Now()
	n := [NonceSize]byte(nonce)
	rp := [KeySize]byte(recipientPub)
	sp := [KeySize]byte(senderPriv)
	ciphertext := box.Seal(nil, plaintext, &n, &rp, &sp)
	metrics.CryptoOperations.WithLabelValues("box_seal").Inc()
	metrics.CryptoOperationDuration.WithLabelValues("box_seal").Observe(time.Since(start).Seconds())
	return ciphertext
}

// Open decrypts and authenticates ciphertext produced by Seal. It fails
// closed: any tampering, wrong key, or wrong nonce returns an error
// rather than partial or garbage plaintext.
func Open(ciphertext []byte, nonce Nonce, senderPub PublicKey, recipientPriv SecretKey) ([]byte, error) {
	start := time.Now()
	n := [NonceSize]byte(nonce)
	sp := [KeySize]byte(senderPub)
	rp := [KeySize]byte(recipientPriv)
	plaintext, ok := box.Open(nil, ciphertext, &n, &sp, &rp)
	metrics.CryptoOperationDuration.WithLabelValues("box_open").Observe(time.Since(start).Seconds())
	if !ok {
		metrics.CryptoErrors.WithLabelValues("box_open", string(errs.CodeDecryptMessage)).Inc()
		return nil, errs.Crypto(errs.CodeDecryptMessage, "box authentication failed", nil)
	}
	metrics.CryptoOperations.WithLabelValues("box_open").Inc()
	return plaintext, nil
}
