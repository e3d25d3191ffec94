package handler

import (
	"net/http"

	"invoicer/internal/model"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

func (h *TemplateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/v1/templates", h.ListTemplates)
}

// ListTemplates returns the fixed layout catalogue
// @Summary      List templates
// @Description  The three built-in invoice layouts. The set is fixed; there is no template management.
// @Tags         templates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Template}
// @Router       /api/v1/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, model.Templates()))
}
