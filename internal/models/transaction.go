package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the known discriminants.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single money movement. Amount is a positive
// magnitude; the sign of its contribution to the balance comes from Type.
type Transaction struct {
	Base
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	UserID      uint            `gorm:"not null;index" json:"userId"`
}
