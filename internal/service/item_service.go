package service

import (
	"context"
	"time"

	"go-rent-market/internal/core/cache"
	"go-rent-market/internal/domain"
	"go-rent-market/pkg/utils"
)

const itemCacheTTL = 5 * time.Minute

type CreateItemInput struct {
	Name         string  `json:"name"`
	InitialPrice float64 `json:"initialPrice"`
	Description  string  `json:"description"`
}

type ItemService struct {
	items domain.ItemRepository
	cache *cache.Cache // 可为 nil（测试 / 未配置 redis）
}

func NewItemService(items domain.ItemRepository, c *cache.Cache) *ItemService {
	return &ItemService{items: items, cache: c}
}

// Create 挂牌。OwnerUserID 恒等于登录用户，请求体里传什么都不认
func (s *ItemService) Create(ctx context.Context, callerID string, in CreateItemInput) (*domain.Item, error) {
	switch {
	case in.Name == "":
		return nil, domain.Missing("name")
	case in.InitialPrice == 0:
		return nil, domain.Missing("initialPrice")
	case in.InitialPrice < 0:
		return nil, domain.Invalid("initialPrice", "Must be a positive number")
	case in.Description == "":
		return nil, domain.Missing("description")
	}

	it := &domain.Item{
		ID:           utils.NewID(),
		Name:         in.Name,
		InitialPrice: in.InitialPrice,
		OwnerUserID:  callerID,
		Description:  in.Description,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	if !utils.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	var (
		it  *domain.Item
		err error
	)
	if s.cache != nil {
		it, err = cache.GetOrLoadJSON[domain.Item](s.cache, ctx, itemKey(id), itemCacheTTL,
			func(ctx context.Context) (*domain.Item, error) {
				return s.items.FindByID(ctx, id)
			})
	} else {
		it, err = s.items.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	return it, nil
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

// Delete 只有挂牌人能删
func (s *ItemService) Delete(ctx context.Context, callerID, id string) error {
	if !utils.ValidID(id) {
		return domain.ErrInvalidID
	}
	it, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	if it.OwnerUserID != callerID {
		return domain.ErrForbidden
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, itemKey(id))
	}
	return nil
}

func itemKey(id string) string { return "item:" + id }
