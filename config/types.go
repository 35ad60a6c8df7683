// Package config provides configuration management for the nolik CLI.
package config

import "time"

// Config is the top-level configuration loaded from YAML, overridable by
// environment variables (see env.go). It describes the two external
// collaborators the core never talks to directly on its own behalf: the
// permissioned ledger and the content-addressed store, plus where local
// account/wallet material lives.
type Config struct {
	Environment string           `yaml:"environment" json:"environment"`
	Node        NodeConfig       `yaml:"node" json:"node"`
	Store       StoreConfig      `yaml:"store" json:"store"`
	Keystore    KeystoreConfig   `yaml:"keystore" json:"keystore"`
	Logging     LoggingConfig    `yaml:"logging" json:"logging"`
	Metrics     MetricsConfig    `yaml:"metrics" json:"metrics"`
	Submission  SubmissionConfig `yaml:"submission" json:"submission"`
}

// NodeConfig describes the permissioned ledger the CLI submits extrinsics
// to and watches events on (§1's "ledger client" collaborator).
type NodeConfig struct {
	RPC             string `yaml:"rpc" json:"rpc"`
	ContractAddress string `yaml:"contract_address" json:"contract_address"`
	ChainID         uint64 `yaml:"chain_id" json:"chain_id"`
}

// StoreConfig describes the content-addressed store the CLI publishes
// envelopes to (§1's "content-addressed store" collaborator).
type StoreConfig struct {
	// Kind selects the backend: "memory" (dev/test, process-local) or
	// "http" (a real content-addressed store reachable over HTTP).
	Kind     string `yaml:"kind" json:"kind"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

// KeystoreConfig locates the local account/wallet configuration files
// (external to the core per §1; the core receives resolved Accounts by
// value).
type KeystoreConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// LoggingConfig configures the structured logger in internal/logger.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // json, text
	Output string `yaml:"output" json:"output"` // stdout, stderr, file path
}

// MetricsConfig configures the Prometheus exporter in internal/metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Addr    string `yaml:"addr" json:"addr"`
}

// SubmissionConfig tunes the per-recipient submission state machine
// (§4.7): how long to wait for a MessageSent/rejection event before
// surfacing EventTimeout, and where confirmed/rejected state is
// persisted, if at all.
type SubmissionConfig struct {
	EventTimeout   time.Duration `yaml:"event_timeout" json:"event_timeout"`
	PersistenceDSN string        `yaml:"persistence_dsn,omitempty" json:"persistence_dsn,omitempty"`
}
