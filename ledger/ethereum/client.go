// Package ethereum is the Ethereum-backed ledger.Client: a bound
// contract exposing `send`/`updateWhitelist`/`updateBlacklist` gated by
// the recipient's on-chain blacklist/whitelist, with the corresponding
// events observed from the submission's transaction receipt.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/w3f-grants-archive/nolik-cli/account"
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/ledger"
)

// Client implements ledger.Client against a deployed messaging
// contract. One Client is bound to one signing Wallet.
type Client struct {
	eth             *ethclient.Client
	contract        *bind.BoundContract
	contractABI     abi.ABI
	contractAddress common.Address
	wallet          *account.Wallet
	chainID         *big.Int
	receiptTimeout  time.Duration
	pollInterval    time.Duration
}

// Config holds the connection parameters for the Ethereum-backed
// ledger collaborator.
type Config struct {
	RPCEndpoint     string
	ContractAddress string
	ChainID         uint64
	ReceiptTimeout  time.Duration
	PollInterval    time.Duration
}

// New dials the configured Ethereum node and binds the messaging
// contract, signing extrinsics with wallet.
func New(ctx context.Context, cfg Config, wallet *account.Wallet) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, errs.Node(errs.CodeTransport, "dial ethereum node", err)
	}

	contractABI, err := abi.JSON(strings.NewReader(messagingABI))
	if err != nil {
		return nil, errs.Node(errs.CodeTransport, "parse contract ABI", err)
	}

	contractAddress := common.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(contractAddress, contractABI, eth, eth, eth)

	receiptTimeout := cfg.ReceiptTimeout
	if receiptTimeout == 0 {
		receiptTimeout = 60 * time.Second
	}
	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = 2 * time.Second
	}

	return &Client{
		eth:             eth,
		contract:        contract,
		contractABI:     contractABI,
		contractAddress: contractAddress,
		wallet:          wallet,
		chainID:         new(big.Int).SetUint64(cfg.ChainID),
		receiptTimeout:  receiptTimeout,
		pollInterval:    pollInterval,
	}, nil
}

// boxKeyToAddress derives a stable Ethereum-style address from a
// cryptobox.PublicKey so the gate's blacklist/whitelist can be keyed
// by chain address the way the contract's mappings are shaped, while
// spec.md's party identity stays the Curve25519 box key.
func boxKeyToAddress(pub cryptobox.PublicKey) common.Address {
	hash := gethcrypto.Keccak256(pub[:])
	return common.BytesToAddress(hash[12:])
}

func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.wallet.PrivateKey(), c.chainID)
	if err != nil {
		return nil, errs.Node(errs.CodeExtrinsicFailed, "build transactor", err)
	}
	auth.Context = ctx
	return auth, nil
}

// Submit calls `send` and waits for the transaction receipt, translating
// the emitted event (or revert reason) into a ledger.Event or NodeError.
func (c *Client) Submit(ctx context.Context, sub ledger.Submission) (ledger.Event, error) {
	auth, err := c.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	recipientAddr := boxKeyToAddress(sub.Recipient)

	tx, err := c.contract.Transact(auth, "send", recipientAddr, sub.ContentID)
	if err != nil {
		return nil, errs.Node(errs.CodeExtrinsicFailed, "send extrinsic", err)
	}

	receipt, err := c.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, err
	}

	return c.eventFromReceipt(receipt, sub)
}

// UpdateWhitelist calls `updateWhitelist` on behalf of owner.
func (c *Client) UpdateWhitelist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error {
	return c.updateList(ctx, "updateWhitelist", add, address)
}

// UpdateBlacklist calls `updateBlacklist` on behalf of owner.
func (c *Client) UpdateBlacklist(ctx context.Context, owner cryptobox.PublicKey, add bool, address cryptobox.PublicKey) error {
	return c.updateList(ctx, "updateBlacklist", add, address)
}

func (c *Client) updateList(ctx context.Context, method string, add bool, address cryptobox.PublicKey) error {
	auth, err := c.transactOpts(ctx)
	if err != nil {
		return err
	}

	tx, err := c.contract.Transact(auth, method, add, boxKeyToAddress(address))
	if err != nil {
		return errs.Node(errs.CodeExtrinsicFailed, fmt.Sprintf("%s extrinsic", method), err)
	}

	_, err = c.waitForReceipt(ctx, tx.Hash())
	return err
}

func (c *Client) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	deadline := time.Now().Add(c.receiptTimeout)
	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if time.Now().After(deadline) {
			return nil, errs.Node(errs.CodeEventTimeout, "timed out waiting for transaction receipt", err)
		}

		select {
		case <-ctx.Done():
			return nil, errs.Node(errs.CodeEventTimeout, "context cancelled waiting for receipt", ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) eventFromReceipt(receipt *types.Receipt, sub ledger.Submission) (ledger.Event, error) {
	if receipt.Status == 0 {
		return nil, errs.Node(errs.CodeExtrinsicFailed, "transaction reverted", nil)
	}

	for _, log := range receipt.Logs {
		if len(log.Topics) == 0 {
			continue
		}
		switch log.Topics[0] {
		case c.contractABI.Events["AddressInBlacklist"].ID:
			return nil, errs.Node(errs.CodeAddressInBlacklist, "sender is blacklisted by recipient", nil)
		case c.contractABI.Events["AddressNotInWhitelist"].ID:
			return nil, errs.Node(errs.CodeAddressNotInWhitelist, "sender is not in recipient's whitelist", nil)
		case c.contractABI.Events["MessageSent"].ID:
			return ledger.MessageSent{From: sub.Sender, To: sub.Recipient, ContentID: sub.ContentID}, nil
		}
	}

	return nil, errs.Node(errs.CodeExtrinsicFailed, "no recognized event in transaction receipt", nil)
}
