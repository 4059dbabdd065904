package repositories

import (
	"gin-marketplace/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICartRepository interface {
	Add(entry models.CartEntry) error
	Remove(userID string, itemID string) error
	FindItems(userID string) (*[]models.Item, error)
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// Add 複合主キーの衝突は無視する（同じ商品を二度追加しても行は1つのまま）
func (r *CartRepository) Add(entry models.CartEntry) error {
	result := r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&entry)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Remove 存在しないエントリの削除は黙って成功する
func (r *CartRepository) Remove(userID string, itemID string) error {
	result := r.db.Delete(&models.CartEntry{}, "user_id = ? AND item_id = ?", userID, itemID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CartRepository) FindItems(userID string) (*[]models.Item, error) {
	items := []models.Item{}
	result := r.db.Model(&models.Item{}).
		Joins("JOIN cart_entries ON cart_entries.item_id = items.id").
		Where("cart_entries.user_id = ?", userID).
		Order("cart_entries.added_at DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}
