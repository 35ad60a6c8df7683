package account

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// record is the on-disk shape of one Account/Owner entry: base64-
// encoded key material under a human alias, matching the original's
// AccountOutput/Account::add keystore file.
type record struct {
	Alias      string `yaml:"alias"`
	PublicKey  string `yaml:"public_key"`
	SecretKey  string `yaml:"secret_key"`
	WalletKey  string `yaml:"wallet_key,omitempty"`
}

type keystoreFile struct {
	Accounts []record `yaml:"accounts"`
}

// Store is a YAML-backed keystore of Owner records, one file per
// directory (accounts.yaml), matching the cascading-file style
// config/loader.go uses for node configuration.
type Store struct {
	path string
}

// NewStore opens (without yet reading) the keystore file at
// <dir>/accounts.yaml.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "accounts.yaml")}
}

func (s *Store) load() (keystoreFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return keystoreFile{}, nil
	}
	if err != nil {
		return keystoreFile{}, errs.Storage(errs.CodeGetFailed, "read keystore file", err)
	}

	var kf keystoreFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return keystoreFile{}, errs.Storage(errs.CodeGetFailed, "parse keystore file", err)
	}
	return kf, nil
}

func (s *Store) save(kf keystoreFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errs.Storage(errs.CodePutFailed, "create keystore directory", err)
	}

	data, err := yaml.Marshal(kf)
	if err != nil {
		return errs.Storage(errs.CodePutFailed, "marshal keystore file", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errs.Storage(errs.CodePutFailed, "write keystore file", err)
	}
	return nil
}

// Add persists owner under its Account's alias, failing if the alias
// is already present.
func (s *Store) Add(owner Owner) error {
	kf, err := s.load()
	if err != nil {
		return err
	}

	for _, r := range kf.Accounts {
		if r.Alias == owner.Account.Alias {
			return errs.Storage(errs.CodePutFailed, fmt.Sprintf("account alias %q already exists", owner.Account.Alias), nil)
		}
	}

	r := record{
		Alias:     owner.Account.Alias,
		PublicKey: cryptobox.EncodeKey(owner.Account.Public),
		SecretKey: cryptobox.EncodeKey(owner.Account.Secret),
	}
	if owner.Wallet != nil {
		r.WalletKey = cryptobox.EncodeBytes(owner.Wallet.Bytes())
	}

	kf.Accounts = append(kf.Accounts, r)
	return s.save(kf)
}

// Get resolves alias to its Owner, failing with CodeSenderDoesNotExist
// if no such alias is configured (matching S3).
func (s *Store) Get(alias string) (Owner, error) {
	kf, err := s.load()
	if err != nil {
		return Owner{}, err
	}

	for _, r := range kf.Accounts {
		if r.Alias != alias {
			continue
		}
		return recordToOwner(r)
	}

	return Owner{}, errs.Input(errs.CodeSenderDoesNotExist, fmt.Sprintf("no account configured for alias %q", alias), nil)
}

// List returns every configured Owner.
func (s *Store) List() ([]Owner, error) {
	kf, err := s.load()
	if err != nil {
		return nil, err
	}

	owners := make([]Owner, 0, len(kf.Accounts))
	for _, r := range kf.Accounts {
		owner, err := recordToOwner(r)
		if err != nil {
			return nil, err
		}
		owners = append(owners, owner)
	}
	return owners, nil
}

func recordToOwner(r record) (Owner, error) {
	pub, err := cryptobox.DecodeKey(r.PublicKey)
	if err != nil {
		return Owner{}, errs.Crypto(errs.CodeInvalidEncoding, "decode stored public key", err)
	}
	sec, err := cryptobox.DecodeKey(r.SecretKey)
	if err != nil {
		return Owner{}, errs.Crypto(errs.CodeInvalidEncoding, "decode stored secret key", err)
	}

	acct := Account{Alias: r.Alias, Public: pub, Secret: sec}
	owner := Owner{Account: acct}

	if r.WalletKey != "" {
		walletBytes, err := cryptobox.DecodeBytes(r.WalletKey)
		if err != nil {
			return Owner{}, errs.Crypto(errs.CodeInvalidEncoding, "decode stored wallet key", err)
		}
		wallet, err := WalletFromBytes(r.Alias, walletBytes)
		if err != nil {
			return Owner{}, err
		}
		owner.Wallet = wallet
	}

	return owner, nil
}
