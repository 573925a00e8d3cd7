package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rent-market/internal/domain"
	"go-rent-market/pkg/utils"
)

type offerFixture struct {
	env    *testEnv
	owner  string
	buyer  string
	item   *domain.Item
	create CreateOfferInput
}

func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()
	env := newTestEnv(t)
	owner, buyer := utils.NewID(), utils.NewID()
	item, err := env.items.Create(context.Background(), owner, CreateItemInput{
		Name:         "bike",
		InitialPrice: 120,
		Description:  "red bike",
	})
	require.NoError(t, err)
	return &offerFixture{
		env:   env,
		owner: owner,
		buyer: buyer,
		item:  item,
		create: CreateOfferInput{
			ItemID:      item.ID,
			OwnerUserID: owner,
			BuyerUserID: buyer,
			OfferPrice:  100,
			ItemName:    "bike",
		},
	}
}

func TestCreateOfferDefaultsToPending(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	in := f.create
	in.Status = "accepted" // 客户端塞什么都不认
	o, err := f.env.offers.Create(ctx, f.buyer, in)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferPending, o.Status)
	assert.Equal(t, f.buyer, o.BuyerUserID)
}

func TestCreateOfferSnapshotsItem(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	// 客户端抄错的 itemName/ownerUserId 以商品表为准
	in := f.create
	in.ItemName = "stolen name"
	in.OwnerUserID = utils.NewID()
	o, err := f.env.offers.Create(ctx, f.buyer, in)
	require.NoError(t, err)
	assert.Equal(t, "bike", o.ItemName)
	assert.Equal(t, f.owner, o.OwnerUserID)
}

func TestCreateOfferValidation(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()
	var ve *domain.ValidationError

	in := f.create
	in.ItemID = ""
	_, err := f.env.offers.Create(ctx, f.buyer, in)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "itemId", ve.Field)

	in = f.create
	in.OfferPrice = 0
	_, err = f.env.offers.Create(ctx, f.buyer, in)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "offerPrice", ve.Field)

	in = f.create
	in.ItemName = ""
	_, err = f.env.offers.Create(ctx, f.buyer, in)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "itemName", ve.Field)

	// 商品不存在
	in = f.create
	in.ItemID = utils.NewID()
	_, err = f.env.offers.Create(ctx, f.buyer, in)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "itemId", ve.Field)

	// 不能对自己的商品出价
	_, err = f.env.offers.Create(ctx, f.owner, f.create)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "buyerUserId", ve.Field)
}

func TestUpdateOfferStatus(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	o, err := f.env.offers.Create(ctx, f.buyer, f.create)
	require.NoError(t, err)

	got, err := f.env.offers.UpdateStatus(ctx, o.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferAccepted, got.Status)

	// 终态之后不许再迁移
	_, err = f.env.offers.UpdateStatus(ctx, o.ID, "declined")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
	assert.Contains(t, ve.Reason, "accepted")

	// 落库的还是 accepted
	cur, err := f.env.offers.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferAccepted, cur.Status)
}

func TestUpdateOfferStatusRejectsUnknown(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	o, err := f.env.offers.Create(ctx, f.buyer, f.create)
	require.NoError(t, err)

	_, err = f.env.offers.UpdateStatus(ctx, o.ID, "politely declined")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)

	// 集合外的值一个字都不许写
	cur, err := f.env.offers.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferPending, cur.Status)

	_, err = f.env.offers.UpdateStatus(ctx, utils.NewID(), "accepted")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.env.offers.UpdateStatus(ctx, "garbage", "accepted")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestListOffersByBuyerAndOwnerAreDisjoint(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	o, err := f.env.offers.Create(ctx, f.buyer, f.create)
	require.NoError(t, err)

	byBuyer, err := f.env.offers.ListByBuyer(ctx, f.buyer)
	require.NoError(t, err)
	require.Len(t, byBuyer, 1)
	assert.Equal(t, o.ID, byBuyer[0].ID)

	byOwner, err := f.env.offers.ListByOwner(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)

	// 同一条报价只在对应过滤下出现
	empty, err := f.env.offers.ListByBuyer(ctx, f.owner)
	require.NoError(t, err)
	assert.Empty(t, empty)

	empty, err = f.env.offers.ListByOwner(ctx, f.buyer)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.env.offers.ListByBuyer(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestDeleteOffer(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	o, err := f.env.offers.Create(ctx, f.buyer, f.create)
	require.NoError(t, err)

	// accepted 了也能删，没有库存要回滚
	_, err = f.env.offers.UpdateStatus(ctx, o.ID, "accepted")
	require.NoError(t, err)
	require.NoError(t, f.env.offers.Delete(ctx, o.ID))

	_, err = f.env.offers.Get(ctx, o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.env.offers.Delete(ctx, o.ID), domain.ErrNotFound)
	assert.ErrorIs(t, f.env.offers.Delete(ctx, "garbage"), domain.ErrInvalidID)
}
