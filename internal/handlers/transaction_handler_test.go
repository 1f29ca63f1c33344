package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "eixo/internal/errors"
	"eixo/internal/models"
	"eixo/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(userID uint, description string, transactionType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(userID uint, description string, transactionType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, description, transactionType, amount)
	}
	return &models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID uint, desc string, txType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: 1},
					Description: desc,
					Amount:      amount,
					Type:        txType,
					UserID:      userID,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Salary","amount":2500.50,"type":"INCOME","userId":1}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 2500.50 {
			t.Errorf("expected amount 2500.50, got %v", tx["amount"])
		}
		if tx["type"] != "INCOME" {
			t.Errorf("expected type INCOME, got %v", tx["type"])
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Salary","amount":100,"type":"TRANSFER","userId":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing userId", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Salary","amount":100,"type":"INCOME"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 500 on store error", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ uint, _ string, _ models.TransactionType, _ decimal.Decimal) (*models.Transaction, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Salary","amount":100,"type":"INCOME","userId":1}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INTERNAL_ERROR")
	})
}
