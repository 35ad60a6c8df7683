package cryptobox

import (
	"encoding/base64"
	"time"

	"golang.org/x/crypto/blake2s"

	"github.com/w3f-grants-archive/nolik-cli/internal/metrics"
)

// Hash256 computes the fixed 256-bit digest used throughout this module
// for domain-separated hashing: the parties tag, recipient hints, and
// the batch content hash all reduce to this one primitive.
func Hash256(parts ...[]byte) [32]byte {
	start := time.Now()
	h, _ := blake2s.New256(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	metrics.CryptoOperations.WithLabelValues("hash256").Inc()
	metrics.CryptoOperationDuration.WithLabelValues("hash256").Observe(time.Since(start).Seconds())
	return out
}

// PartiesTag computes the fixed-size, order-sensitive hash that identifies
// a (sender, recipient) pair on an envelope: base64(Blake2s256(sender ||
// recipient)). Swapping sender and recipient yields a different tag,
// which is what lets a recipient distinguish inbound from outbound
// entries addressed to the same counterparty.
func PartiesTag(senderPub, recipientPub PublicKey) string {
	sum := Hash256(senderPub[:], recipientPub[:])
	return base64.StdEncoding.EncodeToString(sum[:])
}
