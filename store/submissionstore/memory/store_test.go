package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/w3f-grants-archive/nolik-cli/store/submissionstore"
)

func TestSubmissionLifecycleConfirmed(t *testing.T) {
	ctx := context.Background()
	store := New()

	sub := &submissionstore.Submission{
		ContentID: "cid1",
		Sender:    "alice",
		Recipient: "bob",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Create(ctx, sub))

	got, err := store.Get(ctx, "cid1", "bob")
	require.NoError(t, err)
	require.Equal(t, submissionstore.StatusInit, got.Status)

	require.NoError(t, store.MarkSubmitted(ctx, "cid1", "bob", "0xdead"))
	got, err = store.Get(ctx, "cid1", "bob")
	require.NoError(t, err)
	require.Equal(t, submissionstore.StatusSubmitted, got.Status)
	require.Equal(t, "0xdead", got.ExtrinsicRef)

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, store.MarkConfirmed(ctx, "cid1", "bob"))
	got, err = store.Get(ctx, "cid1", "bob")
	require.NoError(t, err)
	require.Equal(t, submissionstore.StatusConfirmed, got.Status)

	pending, err = store.ListPending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSubmissionLifecycleRejected(t *testing.T) {
	ctx := context.Background()
	store := New()

	sub := &submissionstore.Submission{ContentID: "cid2", Sender: "alice", Recipient: "bob"}
	require.NoError(t, store.Create(ctx, sub))
	require.NoError(t, store.MarkSubmitted(ctx, "cid2", "bob", "0xbeef"))
	require.NoError(t, store.MarkRejected(ctx, "cid2", "bob", submissionstore.ReasonInBlacklist))

	got, err := store.Get(ctx, "cid2", "bob")
	require.NoError(t, err)
	require.Equal(t, submissionstore.StatusRejected, got.Status)
	require.Equal(t, submissionstore.ReasonInBlacklist, got.RejectReason)
}

func TestCreateDuplicateFails(t *testing.T) {
	ctx := context.Background()
	store := New()

	sub := &submissionstore.Submission{ContentID: "cid3", Sender: "alice", Recipient: "bob"}
	require.NoError(t, store.Create(ctx, sub))
	require.Error(t, store.Create(ctx, sub))
}

func TestListBySenderPagination(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 0; i < 5; i++ {
		sub := &submissionstore.Submission{
			ContentID: "cid",
			Sender:    "alice",
			Recipient: string(rune('a' + i)),
		}
		require.NoError(t, store.Create(ctx, sub))
	}

	all, err := store.ListBySender(ctx, "alice", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)

	page, err := store.ListBySender(ctx, "alice", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
}

func TestGetMissingReturnsStorageError(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Get(ctx, "nope", "nobody")
	require.Error(t, err)
}
