package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-rent-market/internal/domain"
)

type OfferRepo struct{ db *gorm.DB }

func NewOfferRepo(db *gorm.DB) *OfferRepo { return &OfferRepo{db: db} }

func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepo) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) {
	offers := []domain.Offer{}
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&offers).Error
	return offers, err
}

func (r *OfferRepo) ListByBuyer(ctx context.Context, buyerUserID string) ([]domain.Offer, error) {
	offers := []domain.Offer{}
	err := r.db.WithContext(ctx).Where("buyer_user_id = ?", buyerUserID).Find(&offers).Error
	return offers, err
}

func (r *OfferRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]domain.Offer, error) {
	offers := []domain.Offer{}
	err := r.db.WithContext(ctx).Where("owner_user_id = ?", ownerUserID).Find(&offers).Error
	return offers, err
}

// UpdateStatus 只动 status 一个列，payload 里其它字段一律忽略
func (r *OfferRepo) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Offer{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Offer{}).Error
}
