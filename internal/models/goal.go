package models

import "github.com/shopspring/decimal"

// Goal represents a savings target. ImageURL may carry a base64-encoded
// image rather than an actual URL, so it is unbounded text.
type Goal struct {
	Base
	Title        string          `gorm:"not null" json:"title"`
	TargetValue  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"targetValue"`
	CurrentValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"currentValue"`
	ImageURL     *string         `json:"imageUrl"`
	UserID       uint            `gorm:"not null;index" json:"userId"`
}
