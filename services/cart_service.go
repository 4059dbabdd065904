package services

import (
	"gin-marketplace/models"
	"gin-marketplace/repositories"
)

type ICartService interface {
	Add(userID string, itemID string) error
	Remove(userID string, itemID string) error
	FindItems(userID string) (*[]models.Item, error)
}

type CartService struct {
	repository repositories.ICartRepository
}

func NewCartService(repository repositories.ICartRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) Add(userID string, itemID string) error {
	if itemID == "" {
		return ErrInvalidInput
	}
	return s.repository.Add(models.CartEntry{UserID: userID, ItemID: itemID})
}

func (s *CartService) Remove(userID string, itemID string) error {
	return s.repository.Remove(userID, itemID)
}

func (s *CartService) FindItems(userID string) (*[]models.Item, error) {
	return s.repository.FindItems(userID)
}
