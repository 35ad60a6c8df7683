package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/w3f-grants-archive/nolik-cli/account"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

var (
	accountCreateAlias      string
	accountCreateWithWallet bool
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "manage local account/wallet keystore entries",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "generate a new account identity and store it under an alias",
	Example: `  nolik account create --alias alice --wallet`,
	RunE: runAccountCreate,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "list every account configured in the keystore",
	RunE:  runAccountList,
}

func init() {
	accountCmd.AddCommand(accountCreateCmd, accountListCmd)
	rootCmd.AddCommand(accountCmd)

	accountCreateCmd.Flags().StringVar(&accountCreateAlias, "alias", "", "alias to store the new account under")
	accountCreateCmd.Flags().BoolVar(&accountCreateWithWallet, "wallet", false, "also generate a signing wallet bound to this account")
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	if accountCreateAlias == "" {
		return errs.Input(errs.CodeRequiredKeysMissing, "--alias is required", nil)
	}

	acct, err := account.New(accountCreateAlias)
	if err != nil {
		return err
	}
	owner := account.Owner{Account: acct}

	if accountCreateWithWallet {
		wallet, err := account.NewWallet(accountCreateAlias)
		if err != nil {
			return err
		}
		owner.Wallet = wallet
	}

	store := openAccountStore()
	if err := store.Add(owner); err != nil {
		return err
	}

	fmt.Printf("account %q created: address=%s", accountCreateAlias, owner.Address())
	if owner.Wallet != nil {
		fmt.Printf(" wallet_address=%s", owner.WalletAddress())
	}
	fmt.Println()
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	store := openAccountStore()
	owners, err := store.List()
	if err != nil {
		return err
	}

	for _, owner := range owners {
		wallet := "-"
		if owner.Wallet != nil {
			wallet = owner.WalletAddress()
		}
		fmt.Printf("%s\taddress=%s\twallet=%s\n", owner.Account.Alias, owner.Address(), wallet)
	}
	return nil
}
