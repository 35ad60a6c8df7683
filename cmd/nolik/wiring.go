package main

import (
	"context"

	"github.com/w3f-grants-archive/nolik-cli/account"
	"github.com/w3f-grants-archive/nolik-cli/config"
	"github.com/w3f-grants-archive/nolik-cli/ledger"
	"github.com/w3f-grants-archive/nolik-cli/ledger/ethereum"
	ledgermem "github.com/w3f-grants-archive/nolik-cli/ledger/memory"
	"github.com/w3f-grants-archive/nolik-cli/store"
	httpstore "github.com/w3f-grants-archive/nolik-cli/store/http"
	memstore "github.com/w3f-grants-archive/nolik-cli/store/memory"
)

// loadConfig loads the CLI's layered YAML+env configuration, falling
// back to the built-in development defaults when no config file is
// present (setDefaults runs regardless).
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// sharedMemoryStore is process-local so a `compose` and a later `send`
// invocation within the same process (as in tests) see the same
// backing content, mirroring the in-memory dev-mode fake's lifetime.
var sharedMemoryStore = memstore.New()

// sharedLedgerMemory is process-local for the same reason: an
// `update whitelist`/`update blacklist` and a later `send` in the same
// dev-mode process must observe one shared access-control list state,
// not a fresh empty ledger per call.
var sharedLedgerMemory = ledgermem.New()

// buildContentStore returns the store collaborator the configuration
// selects: an HTTP-backed content-addressed store in production, or
// the in-memory fake for local development and tests.
func buildContentStore(cfg *config.Config) store.Store {
	switch cfg.Store.Kind {
	case "http":
		return httpstore.New(cfg.Store.Endpoint)
	default:
		return sharedMemoryStore
	}
}

// buildLedgerClient returns the ledger collaborator the configuration
// selects: an Ethereum-backed client signing with wallet in production,
// or the in-memory mock for local development and tests.
func buildLedgerClient(ctx context.Context, cfg *config.Config, wallet *account.Wallet) (ledger.Client, error) {
	if config.IsDevelopment() {
		return sharedLedgerMemory, nil
	}
	return ethereum.New(ctx, ethereum.Config{
		RPCEndpoint:     cfg.Node.RPC,
		ContractAddress: cfg.Node.ContractAddress,
		ChainID:         cfg.Node.ChainID,
		ReceiptTimeout:  cfg.Submission.EventTimeout,
	}, wallet)
}
