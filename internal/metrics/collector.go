package metrics

import (
	"sync"
	"time"
)

// SubmissionCollector keeps an in-process snapshot of the §4.7 submission
// state machine, independent of the Prometheus registry: its counts are
// kept in process whether or not a metrics scrape endpoint is running.
type SubmissionCollector struct {
	mu sync.RWMutex

	submitted int64
	confirmed int64
	rejected  map[string]int64 // rejection reason -> count

	latencies []int64 // submit -> terminal state, in microseconds

	startTime time.Time

	maxLatencySamples int
}

// NewSubmissionCollector creates a new submission-state collector.
func NewSubmissionCollector() *SubmissionCollector {
	return &SubmissionCollector{
		rejected:          make(map[string]int64),
		startTime:         time.Now(),
		maxLatencySamples: 1000,
	}
}

// RecordSubmitted records a transition into SUBMITTED.
func (c *SubmissionCollector) RecordSubmitted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitted++
}

// RecordConfirmed records a transition into CONFIRMED, with the latency
// from submit to confirmation.
func (c *SubmissionCollector) RecordConfirmed(latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed++
	c.recordLatency(latency)
}

// RecordRejected records a transition into REJECTED{reason}.
func (c *SubmissionCollector) RecordRejected(reason string, latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rejected[reason]++
	c.recordLatency(latency)
}

func (c *SubmissionCollector) recordLatency(d time.Duration) {
	us := d.Microseconds()
	c.latencies = append(c.latencies, us)
	if len(c.latencies) > c.maxLatencySamples {
		c.latencies = c.latencies[len(c.latencies)-c.maxLatencySamples:]
	}
}

// Snapshot is a point-in-time view of submission state counts.
type Snapshot struct {
	Uptime    time.Duration
	Submitted int64
	Confirmed int64
	Rejected  map[string]int64
	AvgLatencyMicros float64
}

// Snapshot returns the current counts.
func (c *SubmissionCollector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rejected := make(map[string]int64, len(c.rejected))
	for k, v := range c.rejected {
		rejected[k] = v
	}

	var sum int64
	for _, v := range c.latencies {
		sum += v
	}
	avg := 0.0
	if len(c.latencies) > 0 {
		avg = float64(sum) / float64(len(c.latencies))
	}

	return Snapshot{
		Uptime:           time.Since(c.startTime),
		Submitted:        c.submitted,
		Confirmed:        c.confirmed,
		Rejected:         rejected,
		AvgLatencyMicros: avg,
	}
}

// globalSubmissions is the process-wide collector; cmd/nolik's submitOne
// reports into it as submissions resolve.
var globalSubmissions = NewSubmissionCollector()

// GlobalSubmissions returns the process-wide submission collector.
func GlobalSubmissions() *SubmissionCollector {
	return globalSubmissions
}
