package dto

type AddToCartInput struct {
	ItemID string `json:"itemId" binding:"required"`
}
