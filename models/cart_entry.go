package models

import "time"

// CartEntry ユーザーと商品の組み合わせ（複合主キー）。
// ユーザーまたは商品が削除されると該当エントリもカスケード削除される
type CartEntry struct {
	UserID  string    `gorm:"primaryKey;size:9" json:"userId"`
	ItemID  string    `gorm:"primaryKey;size:8" json:"itemId"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"addedAt"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Item Item `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
