package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokumei-gr/doki/internal/constants"
)

func TestResolveOrCreate_FirstContact(t *testing.T) {
	gw := newTestGateway(t)
	identity := NewIdentityService(gw)

	author, err := identity.ResolveOrCreate(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Equal(t, int64(42), author.AuthorID)
	assert.Contains(t, constants.AuthorNames, author.Name)
	assert.Greater(t, author.CreationDate, int64(0))

	// the row was persisted, not just synthesized
	stored, err := gw.GetAuthor(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, author.Name, stored.Name)
}

func TestResolveOrCreate_SecondContactReturnsSameAuthor(t *testing.T) {
	gw := newTestGateway(t)
	identity := NewIdentityService(gw)

	first, err := identity.ResolveOrCreate(context.Background(), 7)
	require.NoError(t, err)

	second, err := identity.ResolveOrCreate(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, first.AuthorID, second.AuthorID)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.CreationDate, second.CreationDate)
}

func TestResolveOrCreate_DistinctTokensGetDistinctRows(t *testing.T) {
	gw := newTestGateway(t)
	identity := NewIdentityService(gw)

	a, err := identity.ResolveOrCreate(context.Background(), 1)
	require.NoError(t, err)
	b, err := identity.ResolveOrCreate(context.Background(), 2)
	require.NoError(t, err)

	assert.NotEqual(t, a.AuthorID, b.AuthorID)
}
