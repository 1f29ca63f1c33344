package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "eixo/internal/errors"
	"eixo/internal/models"
)

// GoalProjection is the presentation shape of a goal on the dashboard.
type GoalProjection struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	ImageURL *string         `json:"imageUrl"`
}

// DashboardSummary is the aggregated dashboard payload for one user.
//
// The monthlyIncome/monthlyExpenses fields are named for the existing
// client; the sums cover the user's entire transaction history, not a
// calendar month. Likewise activeGoals carries every goal, including
// completed ones.
type DashboardSummary struct {
	Name            string               `json:"name"`
	CurrentStreak   int                  `json:"currentStreak"`
	Balance         decimal.Decimal      `json:"balance"`
	MonthlyIncome   decimal.Decimal      `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal      `json:"monthlyExpenses"`
	ActiveGoals     []GoalProjection     `json:"activeGoals"`
	Transactions    []models.Transaction `json:"transactions"`
}

// dashboardService builds the dashboard aggregation.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetDashboard loads a user with their full transaction and goal history
// and aggregates it into the dashboard payload.
func (s *dashboardService) GetDashboard(userID uint) (*DashboardSummary, error) {
	var user models.User
	err := s.db.
		Preload("Transactions").
		Preload("Goals").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := buildSummary(&user)
	return &summary, nil
}

// buildSummary is the pure aggregation over an already-loaded user.
//
// Invariants: balance = income − expenses, exactly, for any number of
// transactions; transactions come back sorted by CreatedAt descending
// with equal timestamps keeping their input order; goals map 1:1 onto
// projections in input order.
func buildSummary(user *models.User) DashboardSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range user.Transactions {
		if t.Type == models.TransactionTypeIncome {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	goals := make([]GoalProjection, 0, len(user.Goals))
	for _, g := range user.Goals {
		goals = append(goals, GoalProjection{
			ID:       g.ID,
			Title:    g.Title,
			Target:   g.TargetValue,
			Current:  g.CurrentValue,
			ImageURL: g.ImageURL,
		})
	}

	transactions := make([]models.Transaction, len(user.Transactions))
	copy(transactions, user.Transactions)
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return DashboardSummary{
		Name:            user.Name,
		CurrentStreak:   user.CurrentStreak,
		Balance:         income.Sub(expenses),
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		ActiveGoals:     goals,
		Transactions:    transactions,
	}
}
