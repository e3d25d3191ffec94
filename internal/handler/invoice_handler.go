package handler

import (
	"net/http"
	"strconv"

	"invoicer/internal/apiclient"
	"invoicer/internal/middleware"
	"invoicer/internal/service"
	"invoicer/internal/token"
	"invoicer/pkg/pagination"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	tokens         *token.Store
}

func NewInvoiceHandler(invoiceService service.InvoiceService, tokens *token.Store) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		tokens:         tokens,
	}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/v1/invoices", middleware.RequireSession(h.tokens))
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.PATCH("/:id/status", h.UpdateStatus)
		invoices.POST("/:id/send", h.SendInvoice)
		invoices.POST("/:id/clone", h.CloneInvoice)
		invoices.GET("/:id/pdf", h.DownloadPDF)
		invoices.GET("/:id/view", h.ViewInvoice)
	}
}

func invoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid invoice ID"))
		return 0, false
	}
	return id, true
}

// ListInvoices returns a paginated, optionally filtered list of invoices
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        page_size   query     int     false  "Items per page (default 20)"
// @Param        status      query     string  false  "Filter by status (draft, sent, paid, overdue, cancelled)"
// @Param        client_id   query     int     false  "Filter by client"
// @Param        start_date  query     string  false  "Issue date lower bound (YYYY-MM-DD)"
// @Param        end_date    query     string  false  "Issue date upper bound (YYYY-MM-DD)"
// @Success      200         {object}  response.Response{data=service.InvoiceListResponse}
// @Failure      502         {object}  response.Response
// @Router       /api/v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := pagination.Parse(c)
	clientID, _ := strconv.ParseInt(c.Query("client_id"), 10, 64)

	filter := apiclient.InvoiceListFilter{
		Page:      params.Page,
		PageSize:  params.PageSize,
		Status:    c.Query("status"),
		ClientID:  clientID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoices))
}

// GetInvoice returns one invoice with display totals per line
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=service.InvoiceDetail}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	detail, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}

// DeleteInvoice removes an invoice
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// UpdateStatus transitions an invoice to a new status
// @Summary      Update invoice status
// @Tags         invoices
// @Produce      json
// @Param        id      path      int     true  "Invoice ID"
// @Param        status  query     string  true  "New status (draft, sent, paid, overdue, cancelled)"
// @Success      200     {object}  response.Response{data=model.Invoice}
// @Failure      400     {object}  response.Response
// @Router       /api/v1/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

// SendInvoice emails an invoice to a recipient
// @Summary      Send invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Invoice ID"
// @Param        payload  body      service.SendRequest  true  "Recipient and message"
// @Success      200      {object}  response.Response{data=apiclient.SendInvoiceResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/invoices/{id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var req service.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.invoiceService.Send(c.Request.Context(), id, req)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// CloneInvoice duplicates an invoice as a new draft
// @Summary      Clone invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      201  {object}  response.Response{data=model.Invoice}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/invoices/{id}/clone [post]
func (h *InvoiceHandler) CloneInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Clone(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// DownloadPDF streams the backend-generated PDF as an attachment
// @Summary      Download invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  int  true  "Invoice ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  response.Response
// @Router       /api/v1/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	data, filename, err := h.invoiceService.DownloadPDF(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ViewInvoice renders a persisted invoice through one of the fixed layouts
// @Summary      Render invoice HTML
// @Tags         invoices
// @Produce      html
// @Param        id           path   int  true   "Invoice ID"
// @Param        template_id  query  int  false  "Layout ID (1 Modern, 2 Professional, 3 Minimal)"
// @Success      200  {string}  string
// @Failure      404  {object}  response.Response
// @Router       /api/v1/invoices/{id}/view [get]
func (h *InvoiceHandler) ViewInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	templateID, _ := strconv.Atoi(c.Query("template_id"))

	html, err := h.invoiceService.ViewHTML(c.Request.Context(), id, templateID)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
