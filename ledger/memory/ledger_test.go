package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/ledger"
)

func mustPub(t *testing.T) cryptobox.PublicKey {
	t.Helper()
	pub, _, err := cryptobox.GenerateKeyPair()
	require.NoError(t, err)
	return pub
}

// TestScenarioS6 mirrors the seeded blacklist/whitelist scenario: bob
// blacklists alice, then alice's submission to bob is rejected; bob
// whitelists alice instead and the same submission succeeds; bob
// whitelists only carol and alice's submission is rejected as
// not-in-whitelist.
func TestScenarioS6(t *testing.T) {
	ctx := context.Background()
	alice := mustPub(t)
	bob := mustPub(t)
	carol := mustPub(t)

	client := New()

	require.NoError(t, client.UpdateBlacklist(ctx, bob, true, alice))
	_, err := client.Submit(ctx, ledger.Submission{Sender: alice, Recipient: bob, ContentID: "cid1"})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindNode, errs.CodeAddressInBlacklist))

	require.NoError(t, client.UpdateBlacklist(ctx, bob, false, alice))
	require.NoError(t, client.UpdateWhitelist(ctx, bob, true, alice))
	ev, err := client.Submit(ctx, ledger.Submission{Sender: alice, Recipient: bob, ContentID: "cid1"})
	require.NoError(t, err)
	sent, ok := ev.(ledger.MessageSent)
	require.True(t, ok)
	require.Equal(t, "cid1", sent.ContentID)

	require.NoError(t, client.UpdateWhitelist(ctx, bob, false, alice))
	require.NoError(t, client.UpdateWhitelist(ctx, bob, true, carol))
	_, err = client.Submit(ctx, ledger.Submission{Sender: alice, Recipient: bob, ContentID: "cid1"})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindNode, errs.CodeAddressNotInWhitelist))
}
