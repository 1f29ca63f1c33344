package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "eixo/internal/errors"
	"eixo/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a money movement for a user. The amount is
// stored exactly as given; transactions are immutable once created.
func (s *transactionService) CreateTransaction(
	userID uint,
	description string,
	transactionType models.TransactionType,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	transaction := &models.Transaction{
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		UserID:      userID,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}
