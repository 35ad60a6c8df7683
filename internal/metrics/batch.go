package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesComposed tracks C5 assembler runs.
	BatchesComposed = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "composed_total",
			Help:      "Total number of envelopes composed",
		},
		[]string{"status"}, // success, failure
	)

	// BatchRecipients tracks how many recipients a composed envelope
	// addressed, a proxy for session/message fan-out per compose.
	BatchRecipients = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "recipients",
			Help:      "Number of recipients addressed per composed envelope",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		},
	)

	// BatchComposeDuration tracks the wall-clock cost of NewBatch,
	// dominated by key generation and per-party box sealing.
	BatchComposeDuration = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "compose_duration_seconds",
			Help:      "Envelope compose duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15), // 0.1ms to 1.6s
		},
	)

	// EnvelopeSize tracks the canonical-form envelope size handed to the
	// store collaborator.
	EnvelopeSize = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "envelope_size_bytes",
			Help:      "Size of the canonical envelope handed to the store",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 10), // 256B to 64MB
		},
	)

	// SubmissionsByOutcome tracks §4.7 submission outcomes as they
	// resolve, mirroring SubmissionCollector but in a form a Prometheus
	// scraper can see across process restarts of the same fleet.
	SubmissionsByOutcome = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "outcomes_total",
			Help:      "Total number of per-recipient submissions by terminal outcome",
		},
		[]string{"outcome"}, // confirmed, in_blacklist, not_in_whitelist, wallet_balance, transport
	)
)
