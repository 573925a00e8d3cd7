package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rent-market/internal/domain"
	"go-rent-market/pkg/utils"
)

func TestCreateItemOwnerFromCaller(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller := utils.NewID()

	it, err := env.items.Create(ctx, caller, CreateItemInput{
		Name:         "bike",
		InitialPrice: 120,
		Description:  "red bike",
	})
	require.NoError(t, err)
	// owner 永远是登录用户，请求体没有任何字段能改它
	assert.Equal(t, caller, it.OwnerUserID)
	assert.True(t, utils.ValidID(it.ID))
}

func TestCreateItemValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller := utils.NewID()
	var ve *domain.ValidationError

	_, err := env.items.Create(ctx, caller, CreateItemInput{InitialPrice: 10, Description: "d"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = env.items.Create(ctx, caller, CreateItemInput{Name: "bike", Description: "d"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "initialPrice", ve.Field)

	_, err = env.items.Create(ctx, caller, CreateItemInput{Name: "bike", InitialPrice: -5, Description: "d"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "initialPrice", ve.Field)

	_, err = env.items.Create(ctx, caller, CreateItemInput{Name: "bike", InitialPrice: 10})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)
}

func TestGetItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.items.Get(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = env.items.Get(ctx, utils.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	it, err := env.items.Create(ctx, utils.NewID(), CreateItemInput{Name: "bike", InitialPrice: 10, Description: "d"})
	require.NoError(t, err)
	got, err := env.items.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
}

func TestDeleteItemOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := utils.NewID()

	it, err := env.items.Create(ctx, owner, CreateItemInput{Name: "bike", InitialPrice: 10, Description: "d"})
	require.NoError(t, err)

	err = env.items.Delete(ctx, utils.NewID(), it.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, env.items.Delete(ctx, owner, it.ID))
	_, err = env.items.Get(ctx, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, env.items.Delete(ctx, owner, it.ID), domain.ErrNotFound)
	assert.ErrorIs(t, env.items.Delete(ctx, owner, "garbage"), domain.ErrInvalidID)
}
