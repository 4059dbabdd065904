package main

import (
	"gin-marketplace/infra"
	"gin-marketplace/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	// CartEntryはUser/Itemへの外部キーを張るので最後にマイグレーションする
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartEntry{}); err != nil {
		panic("Failed to migrate database")
	}
}
