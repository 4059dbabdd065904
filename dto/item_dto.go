package dto

import (
	"encoding/json"
	"strconv"
)

// FlexPrice 数値・数値文字列のどちらでも受け取る価格型。
// 解釈できない値はエラーにせず0に正規化する（元の契約をそのまま維持）
type FlexPrice float64

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = FlexPrice(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*p = FlexPrice(n)
			return nil
		}
	}

	*p = 0
	return nil
}

type CreateItemInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Price       FlexPrice `json:"price"`
	ImageURL    string    `json:"imageUrl"`
}

// UpdateItemInput 部分更新用。nilのフィールドは既存値を維持する
type UpdateItemInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Price       *FlexPrice `json:"price"`
	ImageURL    *string    `json:"imageUrl"`
}

type CreateItemResponse struct {
	ID string `json:"id"`
}
