package metrics

import "github.com/prometheus/client_golang/prometheus"

// namespace prefixes every metric this package exports.
const namespace = "nolik"

// Registry is the Prometheus registry every metric in this package
// attaches to; internal/metrics/server.go serves it over HTTP.
var Registry = prometheus.NewRegistry()
