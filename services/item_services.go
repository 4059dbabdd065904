package services

import (
	"gin-marketplace/constants"
	"gin-marketplace/dto"
	"gin-marketplace/idgen"
	"gin-marketplace/models"
	"gin-marketplace/repositories"
)

type IItemService interface {
	FindAll() (*[]models.Item, error)
	FindBySeller(sellerID string) (*[]models.Item, error)
	Create(createItemInput dto.CreateItemInput, sellerID string) (*models.Item, error)
	Update(itemID string, updateItemInput dto.UpdateItemInput) error
	Delete(itemID string) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll() (*[]models.Item, error) {
	return s.repository.FindAll()
}

func (s *ItemService) FindBySeller(sellerID string) (*[]models.Item, error) {
	return s.repository.FindBySeller(sellerID)
}

func (s *ItemService) Create(createItemInput dto.CreateItemInput, sellerID string) (*models.Item, error) {
	if createItemInput.Title == "" {
		return nil, ErrInvalidInput
	}

	newItem := models.Item{
		ID:          idgen.Generate(constants.ItemIDLength),
		SellerID:    &sellerID,
		Title:       createItemInput.Title,
		Description: createItemInput.Description,
		Price:       normalizePrice(float64(createItemInput.Price)),
		ImageURL:    createItemInput.ImageURL,
	}
	return s.repository.Create(newItem)
}

// Update 渡されたフィールドだけ更新する。nilのフィールドは既存値を維持
func (s *ItemService) Update(itemID string, updateItemInput dto.UpdateItemInput) error {
	updates := map[string]interface{}{}
	if updateItemInput.Title != nil {
		updates["title"] = *updateItemInput.Title
	}
	if updateItemInput.Description != nil {
		updates["description"] = *updateItemInput.Description
	}
	if updateItemInput.Price != nil {
		updates["price"] = normalizePrice(float64(*updateItemInput.Price))
	}
	if updateItemInput.ImageURL != nil {
		updates["image_url"] = *updateItemInput.ImageURL
	}
	return s.repository.Update(itemID, updates)
}

func (s *ItemService) Delete(itemID string) error {
	return s.repository.Delete(itemID)
}

// normalizePrice 価格は非負に丸める。不正な値は0（dto.FlexPrice参照）
func normalizePrice(price float64) float64 {
	if price < 0 {
		return 0
	}
	return price
}
