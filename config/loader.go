package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoaderOptions configures the configuration loader.
type LoaderOptions struct {
	// ConfigDir is the directory containing config files (default: ./config).
	ConfigDir string
	// Environment overrides automatic environment detection.
	Environment string
	// SkipEnvSubstitution disables environment variable substitution.
	SkipEnvSubstitution bool
	// SkipValidation disables configuration validation.
	SkipValidation bool
}

// DefaultLoaderOptions returns default loader options.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		ConfigDir:           "config",
		Environment:         "",
		SkipEnvSubstitution: false,
		SkipValidation:      false,
	}
}

// Load loads configuration with automatic environment detection: it tries
// <dir>/<env>.yaml, then <dir>/default.yaml, then <dir>/config.yaml, and
// finally falls back to an empty Config with defaults applied.
func Load(opts ...LoaderOptions) (*Config, error) {
	options := DefaultLoaderOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	env := options.Environment
	if env == "" {
		env = GetEnvironment()
	}

	envConfigPath := filepath.Join(options.ConfigDir, fmt.Sprintf("%s.yaml", env))
	cfg, err := loadConfigFile(envConfigPath)
	if err != nil {
		defaultConfigPath := filepath.Join(options.ConfigDir, "default.yaml")
		cfg, err = loadConfigFile(defaultConfigPath)
		if err != nil {
			configPath := filepath.Join(options.ConfigDir, "config.yaml")
			cfg, err = loadConfigFile(configPath)
			if err != nil {
				cfg = &Config{}
			}
		}
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	setDefaults(cfg)

	if !options.SkipEnvSubstitution {
		SubstituteEnvVarsInConfig(cfg)
	}

	applyEnvironmentOverrides(cfg)

	if !options.SkipValidation {
		for _, issue := range ValidateConfiguration(cfg) {
			if issue.Level == "error" {
				return nil, fmt.Errorf("configuration validation failed: %s - %s", issue.Field, issue.Message)
			}
		}
	}

	return cfg, nil
}

// LoadFromFile parses a single YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func loadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return LoadFromFile(path)
}

// applyEnvironmentOverrides overrides config with NOLIK_* environment
// variables, matching the teacher's highest-priority override layer.
func applyEnvironmentOverrides(cfg *Config) {
	if rpc := os.Getenv("NOLIK_NODE_RPC"); rpc != "" {
		cfg.Node.RPC = rpc
	}
	if addr := os.Getenv("NOLIK_CONTRACT_ADDRESS"); addr != "" {
		cfg.Node.ContractAddress = addr
	}
	if endpoint := os.Getenv("NOLIK_STORE_ENDPOINT"); endpoint != "" {
		cfg.Store.Endpoint = endpoint
	}
	if dir := os.Getenv("NOLIK_KEYSTORE_DIR"); dir != "" {
		cfg.Keystore.Directory = dir
	}
	if logLevel := os.Getenv("NOLIK_LOG_LEVEL"); logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat := os.Getenv("NOLIK_LOG_FORMAT"); logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	switch os.Getenv("NOLIK_METRICS_ENABLED") {
	case "true":
		cfg.Metrics.Enabled = true
	case "false":
		cfg.Metrics.Enabled = false
	}
}

// setDefaults fills unset fields with the values the CLI uses out of the
// box against a local devnet and an in-memory store.
func setDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Node.RPC == "" {
		cfg.Node.RPC = "http://127.0.0.1:8545"
	}
	if cfg.Store.Kind == "" {
		cfg.Store.Kind = "memory"
	}
	if cfg.Keystore.Directory == "" {
		cfg.Keystore.Directory = filepath.Join(".", "keystore")
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
	if cfg.Submission.EventTimeout == 0 {
		cfg.Submission.EventTimeout = 30 * time.Second
	}
}

// ValidationIssue is one problem found in a Config; Level is "error" (load
// fails) or "warn" (load proceeds, issue is surfaced to the caller).
type ValidationIssue struct {
	Field   string
	Message string
	Level   string
}

// ValidateConfiguration checks structural invariants Load cannot fix with
// defaults: a store kind must be recognized, and an "http" store needs an
// endpoint.
func ValidateConfiguration(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	switch cfg.Store.Kind {
	case "memory", "http":
	default:
		issues = append(issues, ValidationIssue{
			Field:   "store.kind",
			Message: fmt.Sprintf("unrecognized store kind %q (want memory or http)", cfg.Store.Kind),
			Level:   "error",
		})
	}
	if cfg.Store.Kind == "http" && cfg.Store.Endpoint == "" {
		issues = append(issues, ValidationIssue{
			Field:   "store.endpoint",
			Message: "http store requires an endpoint",
			Level:   "error",
		})
	}

	return issues
}

// LoadForEnvironment loads configuration for a specific environment.
func LoadForEnvironment(environment string) (*Config, error) {
	return Load(LoaderOptions{
		ConfigDir:   "config",
		Environment: environment,
	})
}

// MustLoad loads configuration or panics on error.
func MustLoad(opts ...LoaderOptions) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
