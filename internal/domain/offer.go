package domain

import (
	"context"
	"time"
)

// OfferStatus 报价状态，闭集：pending -> accepted | declined，终态不可再迁移
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// ParseOfferStatus 集合外的值一律拒绝
func ParseOfferStatus(s string) (OfferStatus, bool) {
	switch OfferStatus(s) {
	case OfferPending, OfferAccepted, OfferDeclined:
		return OfferStatus(s), true
	}
	return "", false
}

func (s OfferStatus) Terminal() bool {
	return s == OfferAccepted || s == OfferDeclined
}

// CanTransition pending 可以去任意合法状态（含原地写 pending），终态封死
func (s OfferStatus) CanTransition(to OfferStatus) bool {
	return !s.Terminal()
}

// Offer 买家对商品的报价。ItemName/OwnerUserID 是下单时刻的快照，
// 商品后续变动不回填（记录的是出价当时的条款）
type Offer struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	ItemID      string      `gorm:"size:36;not null;index" json:"itemId"`
	ItemName    string      `gorm:"size:191;not null" json:"itemName"`
	OfferPrice  float64     `gorm:"not null" json:"offerPrice"`
	OwnerUserID string      `gorm:"size:36;not null;index" json:"ownerUserId"`
	BuyerUserID string      `gorm:"size:36;not null;index" json:"buyerUserId"`
	Status      OfferStatus `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (Offer) TableName() string { return "offers" }

type OfferRepository interface {
	Create(ctx context.Context, o *Offer) error
	FindByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	ListByBuyer(ctx context.Context, buyerUserID string) ([]Offer, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Offer, error)
	UpdateStatus(ctx context.Context, id string, status OfferStatus) error
	Delete(ctx context.Context, id string) error
}
