package handler

import (
	"net/http"

	"invoicer/internal/middleware"
	"invoicer/internal/service"
	"invoicer/internal/token"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	tokens           *token.Store
}

func NewDashboardHandler(dashboardService service.DashboardService, tokens *token.Store) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		tokens:           tokens,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/api/v1/dashboard", middleware.RequireSession(h.tokens))
	{
		dashboard.GET("/summary", h.Summary)
	}
}

// Summary returns headline numbers in the user's display currency
// @Summary      Dashboard summary
// @Description  Revenue, pending amount, and counts aggregated over the invoice book
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=service.DashboardSummary}
// @Failure      502  {object}  response.Response
// @Router       /api/v1/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
