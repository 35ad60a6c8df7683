package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

func mustPub(t *testing.T) cryptobox.PublicKey {
	t.Helper()
	pub, _, err := cryptobox.GenerateKeyPair()
	require.NoError(t, err)
	return pub
}

func TestCheckAcceptsWhenNoLists(t *testing.T) {
	alice := mustPub(t)
	require.NoError(t, Check(Lists{}, alice))
}

func TestCheckRejectsBlacklistedSender(t *testing.T) {
	alice := mustPub(t)
	lists := Lists{Blacklist: map[cryptobox.PublicKey]struct{}{alice: {}}}

	err := Check(lists, alice)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindNode, errs.CodeAddressInBlacklist))
}

func TestCheckAcceptsWhitelistedSender(t *testing.T) {
	alice := mustPub(t)
	lists := Lists{Whitelist: map[cryptobox.PublicKey]struct{}{alice: {}}}

	require.NoError(t, Check(lists, alice))
}

func TestCheckRejectsSenderNotInNonEmptyWhitelist(t *testing.T) {
	alice := mustPub(t)
	carol := mustPub(t)
	lists := Lists{Whitelist: map[cryptobox.PublicKey]struct{}{carol: {}}}

	err := Check(lists, alice)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindNode, errs.CodeAddressNotInWhitelist))
}

func TestCheckBlacklistTakesPriorityOverWhitelist(t *testing.T) {
	alice := mustPub(t)
	lists := Lists{
		Blacklist: map[cryptobox.PublicKey]struct{}{alice: {}},
		Whitelist: map[cryptobox.PublicKey]struct{}{alice: {}},
	}

	err := Check(lists, alice)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindNode, errs.CodeAddressInBlacklist))
}
