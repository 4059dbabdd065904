package models

import "time"

// Item 出品された商品。出品者が削除されてもSellerIDがNULLになるだけで商品は残る
type Item struct {
	ID          string    `gorm:"primaryKey;size:8" json:"id"`
	SellerID    *string   `gorm:"size:9;index" json:"sellerId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
