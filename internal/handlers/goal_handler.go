package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "eixo/internal/errors"
	"eixo/internal/services"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// ImageURL may be a base64-encoded image, hence the body size limit
// configured on the router.
type CreateGoalRequest struct {
	Title       string          `json:"title" binding:"required,max=255"`
	TargetValue decimal.Decimal `json:"targetValue"`
	ImageURL    *string         `json:"imageUrl"`
	UserID      uint            `json:"userId" binding:"required"`
}

// CreateGoal handles the creation of a new savings goal
// @Summary     Create a goal
// @Description Record a new savings target for a user
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.UserID, req.Title, req.TargetValue, req.ImageURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}
