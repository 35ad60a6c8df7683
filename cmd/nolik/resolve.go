package main

import (
	"github.com/w3f-grants-archive/nolik-cli/account"
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
)

func openAccountStore() *account.Store {
	return account.NewStore(keystoreDir)
}

// resolveSender looks up a configured alias; a sender must be a known
// local account since composing requires its secret key (S3).
func resolveSender(store *account.Store, alias string) (account.Account, error) {
	owner, err := store.Get(alias)
	if err != nil {
		return account.Account{}, err
	}
	return owner.Account, nil
}

// resolveRecipient accepts either a configured alias or a bare base58
// address (S4): alias lookup is tried first, falling back to address
// parsing so recipients need not be registered locally.
func resolveRecipient(store *account.Store, aliasOrAddr string) (cryptobox.PublicKey, error) {
	if owner, err := store.Get(aliasOrAddr); err == nil {
		return owner.Account.Public, nil
	}
	return cryptobox.ParseAddress(aliasOrAddr)
}

// resolveWallet looks up a configured alias's wallet, required for
// send/update commands which sign ledger extrinsics.
func resolveWallet(store *account.Store, alias string) (*account.Wallet, error) {
	owner, err := store.Get(alias)
	if err != nil {
		return nil, err
	}
	return owner.Wallet, nil
}
