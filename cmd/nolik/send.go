package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/internal/logger"
	"github.com/w3f-grants-archive/nolik-cli/internal/metrics"
	"github.com/w3f-grants-archive/nolik-cli/ledger"
	"github.com/w3f-grants-archive/nolik-cli/store/submissionstore"
	submissionmem "github.com/w3f-grants-archive/nolik-cli/store/submissionstore/memory"
)

var (
	sendContentID  string
	sendWallet     string
	sendRecipients []string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "submit a stored envelope to the ledger",
}

var sendMessageCmd = &cobra.Command{
	Use:   "message",
	Short: "submit a previously stored envelope's content-id to the ledger, once per recipient",
	Example: `  nolik send message --ipfs-id QmXyZ... --wallet alice --recipient bob --recipient carol`,
	RunE: runSendMessage,
}

// submissionStore is package-level so every submitOne call within the
// same run records into one in-process submission history.
var submissionStore = submissionmem.New()

func init() {
	sendCmd.AddCommand(sendMessageCmd)
	rootCmd.AddCommand(sendCmd)

	sendMessageCmd.Flags().StringVar(&sendContentID, "ipfs-id", "", "content-id returned by the store for the envelope to submit")
	sendMessageCmd.Flags().StringVar(&sendWallet, "wallet", "", "wallet alias used to sign the submission")
	sendMessageCmd.Flags().StringArrayVar(&sendRecipients, "recipient", nil, "recipient alias or base58 address to submit to (repeatable; the envelope itself does not disclose its recipients)")
}

// promptPassword reads the wallet password as one line from stdin; the
// terminal's echo is left as it is, so the typed password is shown. The
// returned bytes are never logged.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "wallet password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", errs.Input(errs.CodeRequiredKeysMissing, "failed to read wallet password", err)
	}
	return line, nil
}

func runSendMessage(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		logOutcome("send message", err,
			logger.String("content_id", sendContentID),
			logger.Int("recipients", len(sendRecipients)))
	}()

	if sendContentID == "" {
		return errs.Input(errs.CodeRequiredKeysMissing, "--ipfs-id is required", nil)
	}
	if len(sendRecipients) == 0 {
		return errs.Input(errs.CodeRequiredKeysMissing, "at least one --recipient is required", nil)
	}

	store := openAccountStore()
	sender, err := resolveSender(store, sendWallet)
	if err != nil {
		return err
	}
	wallet, err := resolveWallet(store, sendWallet)
	if err != nil {
		return err
	}
	if wallet == nil {
		return errs.Input(errs.CodeRequiredKeysMissing, fmt.Sprintf("account %q has no wallet bound", sendWallet), nil)
	}
	if _, err := promptPassword(); err != nil {
		return err
	}

	recipients := make([]cryptobox.PublicKey, 0, len(sendRecipients))
	for _, r := range sendRecipients {
		pub, err := resolveRecipient(store, r)
		if err != nil {
			return err
		}
		recipients = append(recipients, pub)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledgerClient, err := buildLedgerClient(ctx, cfg, wallet)
	if err != nil {
		return err
	}

	confirmed := 0
	for _, recipient := range recipients {
		if err := submitOne(ctx, ledgerClient, sender.Public, recipient, sendContentID); err != nil {
			return err
		}
		confirmed++
	}

	fmt.Printf("submitted %s to %d recipient(s)\n", sendContentID, confirmed)
	return nil
}

// submitOne drives one recipient through the submission state machine
// (§4.7): INIT -> SUBMITTED -> CONFIRMED|REJECTED.
func submitOne(ctx context.Context, ledgerClient ledger.Client, sender cryptobox.PublicKey, recipient cryptobox.PublicKey, contentID string) (err error) {
	senderAddr := cryptobox.Address(sender)
	recipientAddr := cryptobox.Address(recipient)

	defer func() {
		logOutcome("submit", err,
			logger.String("content_id", contentID),
			logger.String("recipient", recipientAddr))
	}()

	now := time.Now()
	sub := &submissionstore.Submission{
		ContentID: contentID,
		Sender:    senderAddr,
		Recipient: recipientAddr,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := submissionStore.Create(ctx, sub); err != nil {
		return err
	}
	if err := submissionStore.MarkSubmitted(ctx, contentID, recipientAddr, ""); err != nil {
		return err
	}
	metrics.GlobalSubmissions().RecordSubmitted()

	ev, err := ledgerClient.Submit(ctx, ledger.Submission{Sender: sender, Recipient: recipient, ContentID: contentID})
	if err != nil {
		reason := reasonFor(err)
		metrics.SubmissionsByOutcome.WithLabelValues(string(reason)).Inc()
		metrics.GlobalSubmissions().RecordRejected(string(reason), time.Since(now))
		_ = submissionStore.MarkRejected(ctx, contentID, recipientAddr, reason)
		return err
	}

	if _, ok := ev.(ledger.MessageSent); !ok {
		return errs.Node(errs.CodeExtrinsicFailed, "unexpected ledger event", nil)
	}
	metrics.SubmissionsByOutcome.WithLabelValues("confirmed").Inc()
	metrics.GlobalSubmissions().RecordConfirmed(time.Since(now))
	return submissionStore.MarkConfirmed(ctx, contentID, recipientAddr)
}

func reasonFor(err error) submissionstore.RejectReason {
	switch {
	case errs.Is(err, errs.KindNode, errs.CodeAddressInBlacklist):
		return submissionstore.ReasonInBlacklist
	case errs.Is(err, errs.KindNode, errs.CodeAddressNotInWhitelist):
		return submissionstore.ReasonNotInWhitelist
	case errs.Is(err, errs.KindNode, errs.CodeWalletBalance):
		return submissionstore.ReasonWalletBalance
	default:
		return submissionstore.ReasonTransport
	}
}
