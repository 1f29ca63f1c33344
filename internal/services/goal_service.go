package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "eixo/internal/errors"
	"eixo/internal/models"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal records a new savings target. Progress starts at zero; no
// endpoint in this service advances it.
func (s *goalService) CreateGoal(
	userID uint,
	title string,
	targetValue decimal.Decimal,
	imageURL *string,
) (*models.Goal, error) {
	goal := &models.Goal{
		Title:        title,
		TargetValue:  targetValue,
		CurrentValue: decimal.Zero,
		ImageURL:     imageURL,
		UserID:       userID,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}
