package dto

import "gin-marketplace/models"

type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type ProfileResponse struct {
	User  *models.User  `json:"user"`
	Items []models.Item `json:"items"`
	Cart  []models.Item `json:"cart"`
}
