package service

import (
	"context"
	"fmt"

	"go-rent-market/internal/domain"
	"go-rent-market/pkg/utils"
)

type CreateOfferInput struct {
	ItemID      string  `json:"itemId"`
	OwnerUserID string  `json:"ownerUserId"`
	BuyerUserID string  `json:"buyerUserId"`
	OfferPrice  float64 `json:"offerPrice"`
	ItemName    string  `json:"itemName"`
	Status      string  `json:"status"` // 客户端传了也不认，新报价必是 pending
}

type OfferService struct {
	offers domain.OfferRepository
	items  domain.ItemRepository
}

func NewOfferService(offers domain.OfferRepository, items domain.ItemRepository) *OfferService {
	return &OfferService{offers: offers, items: items}
}

// Create 创建报价。BuyerUserID 恒等于登录用户；ItemName/OwnerUserID 以商品表
// 当前记录为准做快照，不信任客户端抄来的副本
func (s *OfferService) Create(ctx context.Context, callerID string, in CreateOfferInput) (*domain.Offer, error) {
	in.BuyerUserID = callerID

	ordered := []struct {
		name string
		ok   bool
	}{
		{"itemId", in.ItemID != ""},
		{"ownerUserId", in.OwnerUserID != ""},
		{"buyerUserId", in.BuyerUserID != ""},
		{"offerPrice", in.OfferPrice != 0},
		{"itemName", in.ItemName != ""},
	}
	for _, f := range ordered {
		if !f.ok {
			return nil, domain.Missing(f.name)
		}
	}
	if in.OfferPrice < 0 {
		return nil, domain.Invalid("offerPrice", "Must be a positive number")
	}

	it, err := s.items.FindByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.Invalid("itemId", "Item does not exist")
	}
	if it.OwnerUserID == callerID {
		return nil, domain.Invalid("buyerUserId", "Cannot make an offer on your own item")
	}

	o := &domain.Offer{
		ID:          utils.NewID(),
		ItemID:      it.ID,
		ItemName:    it.Name,
		OfferPrice:  in.OfferPrice,
		OwnerUserID: it.OwnerUserID,
		BuyerUserID: callerID,
		Status:      domain.OfferPending,
	}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferService) Get(ctx context.Context, id string) (*domain.Offer, error) {
	if !utils.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	o, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx)
}

func (s *OfferService) ListByBuyer(ctx context.Context, buyerUserID string) ([]domain.Offer, error) {
	if !utils.ValidID(buyerUserID) {
		return nil, domain.ErrInvalidID
	}
	return s.offers.ListByBuyer(ctx, buyerUserID)
}

func (s *OfferService) ListByOwner(ctx context.Context, ownerUserID string) ([]domain.Offer, error) {
	if !utils.ValidID(ownerUserID) {
		return nil, domain.ErrInvalidID
	}
	return s.offers.ListByOwner(ctx, ownerUserID)
}

// UpdateStatus 状态机唯一的写入口：集合外的值拒绝，终态之后拒绝
func (s *OfferService) UpdateStatus(ctx context.Context, id, status string) (*domain.Offer, error) {
	if !utils.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	next, ok := domain.ParseOfferStatus(status)
	if !ok {
		return nil, domain.Invalid("status", fmt.Sprintf("`%s` is not a valid status", status))
	}
	o, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !o.Status.CanTransition(next) {
		return nil, domain.Invalid("status", fmt.Sprintf("Offer is already %s", o.Status))
	}
	if err := s.offers.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

func (s *OfferService) Delete(ctx context.Context, id string) error {
	if !utils.ValidID(id) {
		return domain.ErrInvalidID
	}
	o, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	// accepted 的报价也允许删，这里没有库存模型要回滚
	return s.offers.Delete(ctx, id)
}
