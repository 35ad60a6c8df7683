package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CryptoOperations tracks C1/C3/C4 primitive calls: key generation, box
	// seal/open and the blake2s-based hash/parties-tag/recipient-hint
	// derivations.
	CryptoOperations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crypto",
			Name:      "operations_total",
			Help:      "Total number of cryptographic operations",
		},
		[]string{"operation"}, // generate_keypair, box_seal, box_open, hash256
	)

	// CryptoErrors tracks crypto failures: box authentication failures
	// (recorded under decrypt_message whether a session or a message was
	// being opened) and key generation failures.
	CryptoErrors = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crypto",
			Name:      "errors_total",
			Help:      "Total number of cryptographic errors",
		},
		[]string{"operation", "code"},
	)

	// CryptoOperationDuration tracks how long box/hash primitives take;
	// pure synchronous work per §5, so these should never show
	// suspension-sized tails.
	CryptoOperationDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "crypto",
			Name:      "operation_duration_seconds",
			Help:      "Cryptographic operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 15), // 10µs to 163ms
		},
		[]string{"operation"},
	)
)
