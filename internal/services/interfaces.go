package services

import (
	"time"

	"github.com/shopspring/decimal"

	"eixo/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Signup(name, email, cpf, phone, password string, birthDate *time.Time) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, description string, transactionType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error)
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID uint, title string, targetValue decimal.Decimal, imageURL *string) (*models.Goal, error)
}

// DashboardServicer defines the contract for the dashboard aggregation.
type DashboardServicer interface {
	GetDashboard(userID uint) (*DashboardSummary, error)
}
