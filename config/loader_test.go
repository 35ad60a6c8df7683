package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(LoaderOptions{
		ConfigDir:      ".",
		Environment:    "development",
		SkipValidation: true,
	})

	if err != nil {
		t.Fatalf("Failed to load development config: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}

	if cfg.Submission.EventTimeout != 30*time.Second {
		t.Errorf("Submission.EventTimeout = %v, want default of 30s", cfg.Submission.EventTimeout)
	}
}

func TestLoadForEachEnvironment(t *testing.T) {
	tests := []string{"development", "staging", "production", "local"}

	for _, env := range tests {
		t.Run(env, func(t *testing.T) {
			cfg, err := Load(LoaderOptions{
				ConfigDir:      ".",
				Environment:    env,
				SkipValidation: true,
			})
			if err != nil {
				t.Fatalf("Failed to load %s config: %v", env, err)
			}

			if cfg.Environment != env {
				t.Errorf("Environment = %q, want %q", cfg.Environment, env)
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	os.Setenv("NOLIK_NODE_RPC", "http://override-rpc:8545")
	os.Setenv("NOLIK_LOG_LEVEL", "debug")
	defer os.Unsetenv("NOLIK_NODE_RPC")
	defer os.Unsetenv("NOLIK_LOG_LEVEL")

	cfg, err := Load(LoaderOptions{
		ConfigDir:      ".",
		Environment:    "development",
		SkipValidation: true,
	})

	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Node.RPC != "http://override-rpc:8545" {
		t.Errorf("Node.RPC = %q, want %q", cfg.Node.RPC, "http://override-rpc:8545")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadWithCustomConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	testConfig := `
environment: test
logging:
  level: info
  format: json
`
	if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(LoaderOptions{
		ConfigDir:      tmpDir,
		Environment:    "test",
		SkipValidation: true,
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg == nil {
		t.Fatal("Config should not be nil")
	}
	if cfg.Environment != "test" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "test")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestDefaultLoaderOptions(t *testing.T) {
	opts := DefaultLoaderOptions()

	if opts.ConfigDir != "config" {
		t.Errorf("ConfigDir = %q, want %q", opts.ConfigDir, "config")
	}
	if opts.SkipEnvSubstitution {
		t.Error("SkipEnvSubstitution should be false by default")
	}
	if opts.SkipValidation {
		t.Error("SkipValidation should be false by default")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Environment != "development" {
		t.Errorf("Default environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.Store.Kind != "memory" {
		t.Errorf("Default store kind = %q, want %q", cfg.Store.Kind, "memory")
	}
	if cfg.Submission.EventTimeout != 30*time.Second {
		t.Errorf("Default event timeout = %v, want 30s", cfg.Submission.EventTimeout)
	}
}

func TestValidateConfigurationRejectsUnknownStoreKind(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Kind: "ipfs-v2"}}
	issues := ValidateConfiguration(cfg)
	if len(issues) == 0 {
		t.Fatal("expected a validation issue for an unrecognized store kind")
	}
}

func TestValidateConfigurationRequiresEndpointForHTTPStore(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Kind: "http"}}
	issues := ValidateConfiguration(cfg)
	if len(issues) == 0 {
		t.Fatal("expected a validation issue for an http store with no endpoint")
	}
}
