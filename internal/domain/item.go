package domain

import (
	"context"
	"time"
)

// Item 挂牌商品；OwnerUserID 永远来自登录态，不信任请求体
type Item struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:191;not null" json:"name"`
	InitialPrice float64   `gorm:"not null" json:"initialPrice"`
	OwnerUserID  string    `gorm:"size:36;not null;index" json:"ownerUserId"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return "items" }

type ItemRepository interface {
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	Delete(ctx context.Context, id string) error
}
