package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/internal/logger"
	"github.com/w3f-grants-archive/nolik-cli/internal/metrics"
	"github.com/w3f-grants-archive/nolik-cli/message"
)

var (
	composeSender     string
	composeRecipients []string
	composeKeys       []string
	composeValues     []string
	composeFiles      []string
	composeOut        string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "compose an envelope",
}

var composeMessageCmd = &cobra.Command{
	Use:   "message",
	Short: "compose an encrypted multi-recipient message envelope",
	Example: `  nolik compose message --sender alice --recipient bob --recipient carol \
    --key subject --value hello --file ./attachment.txt`,
	RunE: runComposeMessage,
}

func init() {
	composeCmd.AddCommand(composeMessageCmd)
	rootCmd.AddCommand(composeCmd)

	composeMessageCmd.Flags().StringVar(&composeSender, "sender", "", "sender account alias")
	composeMessageCmd.Flags().StringArrayVar(&composeRecipients, "recipient", nil, "recipient alias or base58 address (repeatable)")
	composeMessageCmd.Flags().StringArrayVar(&composeKeys, "key", nil, "entry key (repeatable, paired positionally with --value)")
	composeMessageCmd.Flags().StringArrayVar(&composeValues, "value", nil, "entry value (repeatable, paired positionally with --key)")
	composeMessageCmd.Flags().StringArrayVar(&composeFiles, "file", nil, "path to a file attachment (repeatable)")
	composeMessageCmd.Flags().StringVar(&composeOut, "out", "", "also write the canonical envelope JSON to this path (the envelope is stored and its content-id printed either way)")
}

func runComposeMessage(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		logOutcome("compose message", err,
			logger.String("sender", composeSender),
			logger.Int("recipients", len(composeRecipients)))
	}()

	store := openAccountStore()

	sender, err := resolveSender(store, composeSender)
	if err != nil {
		return err
	}

	if len(composeKeys) != len(composeValues) {
		return errs.Input(errs.CodeNoCorrespondingValue, "every --key requires a matching --value", nil).
			WithDetail("keys", len(composeKeys)).WithDetail("values", len(composeValues))
	}

	recipients := make([]cryptobox.PublicKey, 0, len(composeRecipients))
	for _, r := range composeRecipients {
		pub, err := resolveRecipient(store, r)
		if err != nil {
			return err
		}
		recipients = append(recipients, pub)
	}

	entries := make([]message.Entry, len(composeKeys))
	for i := range composeKeys {
		entries[i] = message.Entry{Key: composeKeys[i], Value: composeValues[i]}
	}

	files := make([]message.Attachment, 0, len(composeFiles))
	for _, path := range composeFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return errs.Input(errs.CodeFileUnreadable, fmt.Sprintf("cannot read %s", path), err)
		}
		files = append(files, message.Attachment{Name: filepath.Base(path), Binary: data})
	}

	input := message.BatchInput{
		Sender:     sender,
		Recipients: toParties(recipients),
		Entries:    entries,
		Files:      files,
	}

	secretNonce, err := cryptobox.NewNonce()
	if err != nil {
		return err
	}

	start := time.Now()
	envelope, err := message.NewBatch(input, secretNonce)
	metrics.BatchComposeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BatchesComposed.WithLabelValues("failure").Inc()
		return err
	}
	metrics.BatchesComposed.WithLabelValues("success").Inc()
	metrics.BatchRecipients.Observe(float64(len(recipients)))

	canonical, err := envelope.MarshalCanonical()
	if err != nil {
		return errs.Crypto(errs.CodeInvalidEncoding, "marshal envelope", err)
	}
	metrics.EnvelopeSize.Observe(float64(len(canonical)))

	if composeOut != "" {
		if err := os.WriteFile(composeOut, canonical, 0o600); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	content := buildContentStore(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	contentID, err := content.Put(ctx, canonical)
	if err != nil {
		return err
	}

	fmt.Println(contentID)
	return nil
}
