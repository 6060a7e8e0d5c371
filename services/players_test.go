package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pongapi/models"
	"pongapi/testutil"
)

func TestResolvePlayerCreatesOnFirstSighting(t *testing.T) {
	bdb := testutil.SetupDB(t)
	ctx := context.Background()

	id, err := resolvePlayer(ctx, bdb, "Alice")
	require.NoError(t, err)
	require.NotZero(t, id)

	again, err := resolvePlayer(ctx, bdb, "Alice")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	n, err := bdb.NewSelect().Model((*models.Player)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolvePlayerIsExactMatch(t *testing.T) {
	bdb := testutil.SetupDB(t)
	ctx := context.Background()

	// No normalization: case and whitespace distinguish players.
	a, err := resolvePlayer(ctx, bdb, "Bob")
	require.NoError(t, err)
	b, err := resolvePlayer(ctx, bdb, "bob")
	require.NoError(t, err)
	c, err := resolvePlayer(ctx, bdb, "Bob ")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}
