package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Put(ctx, []byte("envelope bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	data, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []byte("envelope bytes"), data)
}

func TestGetUnknownContentIDFails(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "does-not-exist")
	require.Error(t, err)
}

func TestPutReturnsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	id1, err := s.Put(ctx, []byte("a"))
	require.NoError(t, err)
	id2, err := s.Put(ctx, []byte("b"))
	require.NoError(t, err)

	require.NotEqual(t, id1, id2)
}
