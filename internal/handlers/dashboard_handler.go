package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eixo/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the aggregated dashboard for a user
// @Summary     Get dashboard
// @Description Balance, income/expense totals, goals, and transactions sorted newest first
// @Tags        dashboard
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {object} services.DashboardSummary "Dashboard payload"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/{userId} [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
