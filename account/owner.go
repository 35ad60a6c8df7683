package account

// Owner links a sending/receiving Account (the box-encryption identity
// used in compose and decrypt) to the Wallet (the secp256k1 signing
// identity used for ledger extrinsics), matching the split between
// message identity and chain identity that submit requires.
type Owner struct {
	Account Account
	Wallet  *Wallet
}

// Address returns the box-encryption address used for party identity.
func (o Owner) Address() string {
	return o.Account.Address()
}

// WalletAddress returns the chain address used for ledger submissions,
// empty if this owner has no bound wallet.
func (o Owner) WalletAddress() string {
	if o.Wallet == nil {
		return ""
	}
	return o.Wallet.Address()
}
