package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:9" json:"id"`
	Email        string    `gorm:"not null;unique" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	Items        []Item    `gorm:"foreignKey:SellerID;constraint:OnDelete:SET NULL;" json:"-"`
}
