package account

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

func TestStoreAddAndGet(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	alice, err := New("alice")
	require.NoError(t, err)
	wallet, err := NewWallet("alice")
	require.NoError(t, err)

	require.NoError(t, store.Add(Owner{Account: alice, Wallet: wallet}))

	got, err := store.Get("alice")
	require.NoError(t, err)
	require.Equal(t, alice.Public, got.Account.Public)
	require.Equal(t, alice.Secret, got.Account.Secret)
	require.NotNil(t, got.Wallet)
	require.Equal(t, wallet.Bytes(), got.Wallet.Bytes())
}

func TestStoreGetMissingAliasFails(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Get("nobody")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindInput, errs.CodeSenderDoesNotExist))
}

func TestStoreAddDuplicateAliasFails(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	alice, err := New("alice")
	require.NoError(t, err)
	require.NoError(t, store.Add(Owner{Account: alice}))
	require.Error(t, store.Add(Owner{Account: alice}))
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	alice, err := New("alice")
	require.NoError(t, err)
	require.NoError(t, NewStore(dir).Add(Owner{Account: alice}))

	reopened := NewStore(dir)
	got, err := reopened.Get("alice")
	require.NoError(t, err)
	require.Equal(t, alice.Public, got.Account.Public)

	require.FileExists(t, filepath.Join(dir, "accounts.yaml"))
}

func TestStoreListReturnsAllOwners(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, alias := range []string{"alice", "bob", "carol"} {
		acct, err := New(alias)
		require.NoError(t, err)
		require.NoError(t, store.Add(Owner{Account: acct}))
	}

	owners, err := store.List()
	require.NoError(t, err)
	require.Len(t, owners, 3)
}
