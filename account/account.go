// Package account models a local sending identity: a box keypair bound
// to a human-readable alias. Accounts are resolved by the CLI/config
// layer and handed to the message package by value (§5: "the core
// receives resolved Accounts by value").
package account

import (
	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

// Account is {alias, public, secret} per the data model: identified by
// alias or by base58(public), immutable once created.
type Account struct {
	Alias  string
	Public cryptobox.PublicKey
	Secret cryptobox.SecretKey
}

// New generates a fresh account identity for the given alias.
func New(alias string) (Account, error) {
	pub, sec, err := cryptobox.GenerateKeyPair()
	if err != nil {
		return Account{}, err
	}
	return Account{Alias: alias, Public: pub, Secret: sec}, nil
}

// Address returns the base58 address for this account's public key.
func (a Account) Address() string {
	return cryptobox.Address(a.Public)
}

// Party returns the public half of this account as a party.Party, the
// form used everywhere a Group is built.
func (a Account) Party() party.Party {
	return party.Party{PublicKey: a.Public}
}
