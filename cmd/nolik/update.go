package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/internal/logger"
)

var (
	updateFor    string
	updateWallet string
	updateAdd    string
	updateRemove string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "update an account's whitelist or blacklist",
}

var updateWhitelistCmd = &cobra.Command{
	Use:   "whitelist",
	Short: "add or remove an address from an account's whitelist",
	Example: `  nolik update whitelist --for alice --add <base58-address> --wallet alice`,
	RunE: runUpdateList(updateListKindWhitelist),
}

var updateBlacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "add or remove an address from an account's blacklist",
	Example: `  nolik update blacklist --for alice --add <base58-address> --wallet alice`,
	RunE: runUpdateList(updateListKindBlacklist),
}

type updateListKind int

const (
	updateListKindWhitelist updateListKind = iota
	updateListKindBlacklist
)

func init() {
	updateCmd.AddCommand(updateWhitelistCmd, updateBlacklistCmd)
	rootCmd.AddCommand(updateCmd)

	for _, c := range []*cobra.Command{updateWhitelistCmd, updateBlacklistCmd} {
		c.Flags().StringVar(&updateFor, "for", "", "account alias whose list is updated")
		c.Flags().StringVar(&updateWallet, "wallet", "", "wallet alias used to sign the update")
		c.Flags().StringVar(&updateAdd, "add", "", "alias or base58 address to add")
		c.Flags().StringVar(&updateRemove, "remove", "", "alias or base58 address to remove")
	}
}

// runUpdateList returns a RunE closure parameterized on which list the
// invoking subcommand edits; the two subcommands otherwise share every
// other step of resolution and dispatch.
func runUpdateList(kind updateListKind) func(*cobra.Command, []string) error {
	listName := "whitelist"
	if kind == updateListKindBlacklist {
		listName = "blacklist"
	}

	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			logOutcome("update "+listName, err, logger.String("for", updateFor))
		}()

		if (updateAdd == "") == (updateRemove == "") {
			return errs.Input(errs.CodeRequiredKeysMissing, "exactly one of --add or --remove is required", nil)
		}

		store := openAccountStore()

		owner, err := resolveSender(store, updateFor)
		if err != nil {
			return err
		}
		wallet, err := resolveWallet(store, updateWallet)
		if err != nil {
			return err
		}
		if wallet == nil {
			return errs.Input(errs.CodeRequiredKeysMissing, fmt.Sprintf("account %q has no wallet bound", updateWallet), nil)
		}
		if _, err := promptPassword(); err != nil {
			return err
		}

		add := updateAdd != ""
		target := updateAdd
		if !add {
			target = updateRemove
		}
		address, err := resolveRecipient(store, target)
		if err != nil {
			return err
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

		switch kind {
		case updateListKindWhitelist:
			err = ledgerClient.UpdateWhitelist(ctx, owner.Public, add, address)
		case updateListKindBlacklist:
			err = ledgerClient.UpdateBlacklist(ctx, owner.Public, add, address)
		}
		if err != nil {
			return err
		}

		verb := "added to"
		if !add {
			verb = "removed from"
		}
		fmt.Printf("%s %s %s's %s\n", target, verb, updateFor, listName)
		return nil
	}
}
