package repositories

import (
	"gin-marketplace/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	Create(newItem models.Item) (*models.Item, error)
	FindAll() (*[]models.Item, error)
	FindBySeller(sellerID string) (*[]models.Item, error)
	FindByID(itemID string) (*models.Item, error)
	Update(itemID string, updates map[string]interface{}) error
	Delete(itemID string) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) FindAll() (*[]models.Item, error) {
	items := []models.Item{}
	result := r.db.Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindBySeller(sellerID string) (*[]models.Item, error) {
	items := []models.Item{}
	result := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindByID(itemID string) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

// Update 指定されたカラムだけを更新する。対象が存在しなくてもエラーにしない
func (r *ItemRepository) Update(itemID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.Model(&models.Item{}).Where("id = ?", itemID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete 商品を削除する。参照しているカート行は外部キー制約でカスケード削除される
func (r *ItemRepository) Delete(itemID string) error {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
