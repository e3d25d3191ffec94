package handler

import (
	"net/http"
	"strconv"

	"invoicer/internal/middleware"
	"invoicer/internal/model"
	"invoicer/internal/service"
	"invoicer/internal/token"
	"invoicer/internal/websocket"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	draftService service.DraftService
	hub          *websocket.Hub
	tokens       *token.Store
}

func NewDraftHandler(draftService service.DraftService, hub *websocket.Hub, tokens *token.Store) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		hub:          hub,
		tokens:       tokens,
	}
}

func (h *DraftHandler) RegisterRoutes(router *gin.RouterGroup) {
	drafts := router.Group("/api/v1/drafts", middleware.RequireSession(h.tokens))
	{
		drafts.POST("", h.CreateDraft)
		drafts.POST("/from-invoice/:id", h.EditInvoice)
		drafts.GET("/:session", h.GetDraft)
		drafts.DELETE("/:session", h.DiscardDraft)
		drafts.PATCH("/:session", h.UpdateDetails)
		drafts.POST("/:session/lines", h.AddLine)
		drafts.PATCH("/:session/lines/:index", h.UpdateLine)
		drafts.DELETE("/:session/lines/:index", h.RemoveLine)
		drafts.GET("/:session/preview", h.Preview)
		drafts.POST("/:session/submit", h.Submit)
	}

	// The websocket endpoint authenticates via query token, not the session
	// middleware: browsers cannot set headers on socket upgrades.
	router.GET("/api/v1/drafts/:session/ws", h.Subscribe)
}

type createDraftRequest struct {
	Currency string `json:"currency"`
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid line index"))
		return 0, false
	}
	return index, true
}

// CreateDraft opens a new editing session
// @Summary      Create draft
// @Description  Opens an invoice draft seeded with one empty line
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        payload  body      createDraftRequest  false  "Initial currency (defaults to NGN)"
// @Success      201      {object}  response.Response{data=service.DraftState}
// @Router       /api/v1/drafts [post]
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req createDraftRequest
	_ = c.ShouldBindJSON(&req)

	state := h.draftService.Create(model.Currency(req.Currency))
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, state))
}

// EditInvoice opens an editing session hydrated from a persisted invoice
// @Summary      Edit invoice as draft
// @Tags         drafts
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=service.DraftState}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/drafts/from-invoice/{id} [post]
func (h *DraftHandler) EditInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid invoice ID"))
		return
	}

	state, err := h.draftService.BeginEdit(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// GetDraft returns the current editor state
// @Summary      Get draft
// @Tags         drafts
// @Produce      json
// @Param        session  path      string  true  "Draft session ID"
// @Success      200      {object}  response.Response{data=service.DraftState}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/drafts/{session} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	state, err := h.draftService.Get(c.Param("session"))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// DiscardDraft closes a session without submitting
// @Summary      Discard draft
// @Tags         drafts
// @Produce      json
// @Param        session  path      string  true  "Draft session ID"
// @Success      200      {object}  response.Response
// @Router       /api/v1/drafts/{session} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	h.draftService.Discard(c.Param("session"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"discarded": true}))
}

// UpdateDetails patches invoice-level fields of a draft
// @Summary      Update draft details
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        session  path      string                       true  "Draft session ID"
// @Param        payload  body      service.DraftDetailsRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.DraftState}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/drafts/{session} [patch]
func (h *DraftHandler) UpdateDetails(c *gin.Context) {
	var req service.DraftDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	state, err := h.draftService.UpdateDetails(c.Param("session"), req)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// AddLine appends an empty line to the draft
// @Summary      Add draft line
// @Tags         drafts
// @Produce      json
// @Param        session  path      string  true  "Draft session ID"
// @Success      200      {object}  response.Response{data=service.DraftState}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/drafts/{session}/lines [post]
func (h *DraftHandler) AddLine(c *gin.Context) {
	state, err := h.draftService.AddLine(c.Param("session"))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// UpdateLine patches one line of the draft
// @Summary      Update draft line
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        session  path      string                     true  "Draft session ID"
// @Param        index    path      int                        true  "Line index"
// @Param        payload  body      service.UpdateLineRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.DraftState}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/drafts/{session}/lines/{index} [patch]
func (h *DraftHandler) UpdateLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	var req service.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	state, err := h.draftService.UpdateLine(c.Param("session"), index, req)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// RemoveLine deletes a line; the last remaining line cannot be removed
// @Summary      Remove draft line
// @Tags         drafts
// @Produce      json
// @Param        session  path      string  true  "Draft session ID"
// @Param        index    path      int     true  "Line index"
// @Success      200      {object}  response.Response{data=service.DraftState}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/drafts/{session}/lines/{index} [delete]
func (h *DraftHandler) RemoveLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	state, err := h.draftService.RemoveLine(c.Param("session"), index)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// Preview renders the draft through a layout
// @Summary      Preview draft
// @Tags         drafts
// @Produce      html
// @Param        session      path   string  true   "Draft session ID"
// @Param        template_id  query  int     false  "Layout ID (1 Modern, 2 Professional, 3 Minimal)"
// @Success      200  {string}  string
// @Failure      404  {object}  response.Response
// @Router       /api/v1/drafts/{session}/preview [get]
func (h *DraftHandler) Preview(c *gin.Context) {
	templateID, _ := strconv.Atoi(c.Query("template_id"))

	html, err := h.draftService.PreviewHTML(c.Request.Context(), c.Param("session"), templateID)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Submit validates the draft and creates (or updates) the invoice
// @Summary      Submit draft
// @Tags         drafts
// @Produce      json
// @Param        session  path      string  true  "Draft session ID"
// @Success      201      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/drafts/{session}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	invoice, err := h.draftService.Submit(c.Request.Context(), c.Param("session"))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// Subscribe upgrades to a websocket that streams recomputed draft state
// @Summary      Subscribe to draft updates
// @Tags         drafts
// @Param        session  path   string  true  "Draft session ID"
// @Param        token    query  string  true  "Access token"
// @Router       /api/v1/drafts/{session}/ws [get]
func (h *DraftHandler) Subscribe(c *gin.Context) {
	websocket.ServeWs(h.hub, c, h.tokens)
}
