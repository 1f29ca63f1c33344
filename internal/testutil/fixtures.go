package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"eixo/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email/cpf.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithIdentity(t, db, fmt.Sprintf("user%d@test.com", n), fmt.Sprintf("%011d", n))
}

// CreateTestUserWithIdentity creates a user with the given email and cpf.
// The password is always "password123".
func CreateTestUserWithIdentity(t *testing.T, db *gorm.DB, email, cpf string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		CPF:      cpf,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction for the user with the current timestamp.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, txType, amount, time.Time{})
}

// CreateTestTransactionAt creates a transaction with an explicit creation
// timestamp, which the dashboard ordering tests rely on. A zero createdAt
// leaves timestamp assignment to the store.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount string, createdAt time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
		UserID:      userID,
	}
	tx.CreatedAt = createdAt
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a goal with the given target and current progress.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target, current string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Title:        fmt.Sprintf("Test Goal %d", nextID()),
		TargetValue:  decimal.RequireFromString(target),
		CurrentValue: decimal.RequireFromString(current),
		UserID:       userID,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
