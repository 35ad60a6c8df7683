package account

import (
	"crypto/ecdsa"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Wallet is the signing identity used for ledger extrinsics (`send`,
// `update whitelist`, `update blacklist`), distinct from an Account's
// box-encryption keypair: a sender composes with its Account and
// submits with its Wallet.
type Wallet struct {
	Alias      string
	privateKey *secp256k1.PrivateKey
}

// NewWallet generates a fresh secp256k1 signing key for alias.
func NewWallet(alias string) (*Wallet, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errs.Crypto(errs.CodeCryptoBackend, "generate wallet key", err)
	}
	return &Wallet{Alias: alias, privateKey: priv}, nil
}

// WalletFromBytes reconstructs a Wallet from a serialized 32-byte
// secp256k1 scalar, as loaded from a keystore entry.
func WalletFromBytes(alias string, raw []byte) (*Wallet, error) {
	if len(raw) != 32 {
		return nil, errs.Crypto(errs.CodeInvalidEncoding, "wallet key must be 32 bytes", nil)
	}
	priv := secp256k1.PrivKeyFromBytes(raw)
	return &Wallet{Alias: alias, privateKey: priv}, nil
}

// Bytes serializes the wallet's private scalar for keystore persistence.
func (w *Wallet) Bytes() []byte {
	return w.privateKey.Serialize()
}

// Address returns the Ethereum-style address derived from this
// wallet's public key, the identity the ledger contract sees.
func (w *Wallet) Address() string {
	return gethcrypto.PubkeyToAddress(w.ecdsaPublicKey()).Hex()
}

// PrivateKey returns the wallet's signing key in the *ecdsa.PrivateKey
// shape go-ethereum's bind.NewKeyedTransactorWithChainID expects; both
// libraries operate on the same secp256k1 field, so the scalar
// round-trips exactly.
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	key, err := gethcrypto.ToECDSA(w.privateKey.Serialize())
	if err != nil {
		// The scalar came from secp256k1.GeneratePrivateKey or
		// PrivKeyFromBytes, both of which only ever produce valid
		// field elements; a conversion failure here means the wallet
		// was constructed from corrupt bytes further up the stack.
		panic("account: wallet holds an invalid secp256k1 scalar: " + err.Error())
	}
	return key
}

func (w *Wallet) ecdsaPublicKey() ecdsa.PublicKey {
	return w.PrivateKey().PublicKey
}
