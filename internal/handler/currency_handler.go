package handler

import (
	"net/http"

	"invoicer/internal/middleware"
	"invoicer/internal/model"
	"invoicer/internal/service"
	"invoicer/internal/token"
	"invoicer/pkg/money"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService service.CurrencyService
	tokens          *token.Store
}

func NewCurrencyHandler(currencyService service.CurrencyService, tokens *token.Store) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
		tokens:          tokens,
	}
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	currency := router.Group("/api/v1/currency", middleware.RequireSession(h.tokens))
	{
		currency.GET("/convert", h.Convert)
		currency.GET("/rates", h.Rates)
	}
}

// Convert converts an amount between supported currencies
// @Summary      Convert amount
// @Description  Converts for display. On rate-service failure the source amount is returned with converted=false.
// @Tags         currency
// @Produce      json
// @Param        amount  query     string  true  "Amount to convert"
// @Param        from    query     string  true  "Source currency code"
// @Param        to      query     string  true  "Target currency code"
// @Success      200     {object}  response.Response{data=service.ConvertResult}
// @Failure      400     {object}  response.Response
// @Router       /api/v1/currency/convert [get]
func (h *CurrencyHandler) Convert(c *gin.Context) {
	from := model.Currency(c.Query("from"))
	to := model.Currency(c.Query("to"))
	if !from.Valid() || !to.Valid() {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unsupported currency code"))
		return
	}

	amount := money.ParseAmount(c.Query("amount"))
	result := h.currencyService.Convert(c.Request.Context(), amount, from, to)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// Rates returns the cached exchange-rate table for a base currency
// @Summary      Exchange rates
// @Tags         currency
// @Produce      json
// @Param        base  query     string  false  "Base currency code (default NGN)"
// @Success      200   {object}  response.Response{data=apiclient.RatesResponse}
// @Failure      502   {object}  response.Response
// @Router       /api/v1/currency/rates [get]
func (h *CurrencyHandler) Rates(c *gin.Context) {
	base := model.Currency(c.DefaultQuery("base", model.DefaultCurrency.String()))
	if !base.Valid() {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unsupported currency code"))
		return
	}

	rates, err := h.currencyService.Rates(c.Request.Context(), base)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rates))
}
