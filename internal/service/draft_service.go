package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"invoicer/internal/apiclient"
	"invoicer/internal/draft"
	"invoicer/internal/model"
	"invoicer/internal/render"
	"invoicer/pkg/logging"
	"invoicer/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks pre-submit validation failures. Nothing has been
	// sent to the backend when this is returned.
	ErrValidation = errors.New("validation failed")

	// ErrSessionNotFound is returned for unknown or discarded draft sessions.
	ErrSessionNotFound = errors.New("draft session not found")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// --- DTOs ---

// UpdateLineRequest patches one field of one line. Numeric fields arrive as
// raw input strings and are coerced (garbage becomes zero) before touching
// the draft.
type UpdateLineRequest struct {
	Description *string `json:"description"`
	Quantity    *string `json:"quantity"`
	UnitPrice   *string `json:"unit_price"`
	TaxRate     *string `json:"tax_rate"`
}

// DraftDetailsRequest patches the invoice-level fields of a draft.
type DraftDetailsRequest struct {
	ClientID       *int64  `json:"client_id"`
	IssueDate      *string `json:"issue_date"`
	DueDate        *string `json:"due_date"`
	Currency       *string `json:"currency"`
	Notes          *string `json:"notes"`
	PaymentTerms   *string `json:"payment_terms"`
	DiscountAmount *string `json:"discount_amount"`
	TaxAmount      *string `json:"tax_amount"`
	TemplateID     *int    `json:"template_id"`
}

// DraftLineState is one line as the editor displays it: grouped display
// values for blurred fields and raw values for focused editing.
type DraftLineState struct {
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	UnitPriceRaw string `json:"unit_price_raw"`
	Total        string `json:"total"`
}

// DraftState is the full editor state after a mutation. Subtotal and total
// are always recomputed, never stored.
type DraftState struct {
	SessionID      string           `json:"session_id"`
	InvoiceID      *int64           `json:"invoice_id,omitempty"`
	ClientID       int64            `json:"client_id"`
	IssueDate      string           `json:"issue_date"`
	DueDate        string           `json:"due_date"`
	Currency       model.Currency   `json:"currency"`
	CurrencySymbol string           `json:"currency_symbol"`
	TemplateID     int              `json:"template_id"`
	Lines          []DraftLineState `json:"line_items"`
	Discount       string           `json:"discount_amount"`
	DiscountRaw    string           `json:"discount_amount_raw"`
	Tax            string           `json:"tax_amount"`
	TaxRaw         string           `json:"tax_amount_raw"`
	Subtotal       string           `json:"subtotal"`
	Total          string           `json:"total"`
	Notes          string           `json:"notes"`
	PaymentTerms   string           `json:"payment_terms"`
	Revision       uint64           `json:"revision"`
}

// DraftNotifier pushes recomputed editor state to live preview subscribers.
type DraftNotifier interface {
	PublishDraft(sessionID string, payload []byte)
}

// --- Interface ---

// DraftService owns every in-progress invoice draft. Each session is an
// exclusive editing context: mutations are serialized per session and trigger
// a synchronous recompute of subtotal and total.
type DraftService interface {
	Create(currency model.Currency) DraftState
	BeginEdit(ctx context.Context, invoiceID int64) (DraftState, error)
	Get(sessionID string) (DraftState, error)
	AddLine(sessionID string) (DraftState, error)
	RemoveLine(sessionID string, index int) (DraftState, error)
	UpdateLine(sessionID string, index int, req UpdateLineRequest) (DraftState, error)
	UpdateDetails(sessionID string, req DraftDetailsRequest) (DraftState, error)
	PreviewHTML(ctx context.Context, sessionID string, templateID int) (string, error)
	Submit(ctx context.Context, sessionID string) (model.Invoice, error)
	Discard(sessionID string)
}

type draftSession struct {
	mu        sync.Mutex
	draft     *draft.Draft
	invoiceID *int64
	revision  uint64
}

type draftService struct {
	mu        sync.RWMutex
	sessions  map[string]*draftSession
	byInvoice map[int64]string

	api      *apiclient.Client
	clients  ClientService
	auth     AuthService
	renderer render.Renderer
	notifier DraftNotifier
	log      *slog.Logger
}

func NewDraftService(api *apiclient.Client, clients ClientService, auth AuthService, renderer render.Renderer, notifier DraftNotifier, logger *slog.Logger) DraftService {
	return &draftService{
		sessions:  make(map[string]*draftSession),
		byInvoice: make(map[int64]string),
		api:       api,
		clients:   clients,
		auth:      auth,
		renderer:  renderer,
		notifier:  notifier,
		log:       logger.With(logging.Module("drafts")),
	}
}

// --- Implementation ---

func (s *draftService) Create(currency model.Currency) DraftState {
	id := uuid.NewString()
	sess := &draftSession{draft: draft.New(currency)}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.log.Info("draft session opened", slog.String("session", id))
	return s.snapshot(id, sess)
}

// BeginEdit hydrates a draft from a persisted invoice. When a session for the
// invoice is already open, the server copy is only applied if no local edit
// landed while the fetch was in flight: a slow response must never overwrite
// newer local state.
func (s *draftService) BeginEdit(ctx context.Context, invoiceID int64) (DraftState, error) {
	s.mu.RLock()
	existingID, reopened := s.byInvoice[invoiceID]
	var existing *draftSession
	if reopened {
		existing = s.sessions[existingID]
	}
	s.mu.RUnlock()

	if reopened && existing != nil {
		existing.mu.Lock()
		before := existing.revision
		existing.mu.Unlock()

		inv, err := s.api.GetInvoice(ctx, invoiceID)
		if err != nil {
			return DraftState{}, err
		}

		existing.mu.Lock()
		defer existing.mu.Unlock()
		if existing.revision != before {
			// Local edits won the race; keep them.
			s.log.Debug("stale hydrate discarded", slog.String("session", existingID))
			return s.snapshotLocked(existingID, existing), nil
		}
		applyInvoice(existing.draft, inv)
		existing.revision++
		return s.snapshotLocked(existingID, existing), nil
	}

	inv, err := s.api.GetInvoice(ctx, invoiceID)
	if err != nil {
		return DraftState{}, err
	}

	id := uuid.NewString()
	d := draft.New(inv.Currency)
	applyInvoice(d, inv)
	sess := &draftSession{draft: d, invoiceID: &inv.ID}

	s.mu.Lock()
	s.sessions[id] = sess
	s.byInvoice[invoiceID] = id
	s.mu.Unlock()

	s.log.Info("editing persisted invoice", slog.String("session", id), slog.Int64("invoice", invoiceID))
	return s.snapshot(id, sess), nil
}

func (s *draftService) Get(sessionID string) (DraftState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return DraftState{}, err
	}
	return s.snapshot(sessionID, sess), nil
}

func (s *draftService) AddLine(sessionID string) (DraftState, error) {
	return s.mutate(sessionID, func(d *draft.Draft) error {
		d.AddLine()
		return nil
	})
}

func (s *draftService) RemoveLine(sessionID string, index int) (DraftState, error) {
	return s.mutate(sessionID, func(d *draft.Draft) error {
		return d.RemoveLine(index)
	})
}

func (s *draftService) UpdateLine(sessionID string, index int, req UpdateLineRequest) (DraftState, error) {
	patch := draft.LinePatch{Description: req.Description}
	if req.Quantity != nil {
		q := money.ParseAmount(*req.Quantity)
		patch.Quantity = &q
	}
	if req.UnitPrice != nil {
		p := money.ParseAmount(*req.UnitPrice)
		patch.UnitPrice = &p
	}
	if req.TaxRate != nil {
		r := money.ParseAmount(*req.TaxRate)
		patch.TaxRate = &r
	}

	return s.mutate(sessionID, func(d *draft.Draft) error {
		return d.UpdateLine(index, patch)
	})
}

func (s *draftService) UpdateDetails(sessionID string, req DraftDetailsRequest) (DraftState, error) {
	return s.mutate(sessionID, func(d *draft.Draft) error {
		if req.ClientID != nil {
			d.ClientID = *req.ClientID
		}
		if req.IssueDate != nil {
			d.IssueDate = *req.IssueDate
		}
		if req.DueDate != nil {
			d.DueDate = *req.DueDate
		}
		if req.Currency != nil {
			c := model.Currency(*req.Currency)
			if !c.Valid() {
				return validationError("unsupported currency " + *req.Currency)
			}
			d.Currency = c
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
		if req.PaymentTerms != nil {
			d.PaymentTerms = *req.PaymentTerms
		}
		if req.DiscountAmount != nil {
			d.DiscountAmount = money.ParseAmount(*req.DiscountAmount)
		}
		if req.TaxAmount != nil {
			d.TaxAmount = money.ParseAmount(*req.TaxAmount)
		}
		if req.TemplateID != nil {
			d.TemplateID = model.NormalizeTemplateID(*req.TemplateID)
		}
		return nil
	})
}

// PreviewHTML renders the draft through the selected layout. The client and
// current user are fetched for the bill-to/from blocks; a missing client
// renders placeholder text rather than failing.
func (s *draftService) PreviewHTML(ctx context.Context, sessionID string, templateID int) (string, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	snapshot := *sess.draft
	snapshot.LineItems = append([]model.LineItem(nil), sess.draft.LineItems...)
	if templateID == 0 {
		templateID = snapshot.TemplateID
	}
	clientID := snapshot.ClientID
	sess.mu.Unlock()

	var client *model.Client
	if clientID != 0 {
		client, err = s.clients.Find(ctx, clientID)
		if err != nil {
			// Preview still renders, with placeholder bill-to.
			s.log.Warn("client lookup failed for preview", logging.Err(err))
			client = nil
		}
	}

	var userPtr *model.User
	if user, err := s.auth.CurrentUser(ctx); err == nil {
		userPtr = &user
	}

	view := render.BuildDraftView(&snapshot, client, userPtr)
	return s.renderer.RenderHTML(view, templateID)
}

// Submit validates the draft and hands it to the backend. Required fields are
// checked before any network call; on failure the draft is preserved so the
// user can retry. Line items always submit tax_rate 0: drafting uses flat
// invoice-level adjustments only.
func (s *draftService) Submit(ctx context.Context, sessionID string) (model.Invoice, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return model.Invoice{}, err
	}

	sess.mu.Lock()
	d := sess.draft
	if d.ClientID == 0 {
		sess.mu.Unlock()
		return model.Invoice{}, validationError("please select a client")
	}
	if d.IssueDate == "" || d.DueDate == "" {
		sess.mu.Unlock()
		return model.Invoice{}, validationError("please fill in issue and due dates")
	}

	req := apiclient.CreateInvoiceRequest{
		ClientID:       d.ClientID,
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		Currency:       d.Currency,
		DiscountAmount: d.DiscountAmount,
		TaxAmount:      d.TaxAmount,
	}
	if d.Notes != "" {
		notes := d.Notes
		req.Notes = &notes
	}
	if d.PaymentTerms != "" {
		terms := d.PaymentTerms
		req.PaymentTerms = &terms
	}
	templateID := model.NormalizeTemplateID(d.TemplateID)
	req.TemplateID = &templateID
	for _, line := range d.LineItems {
		req.LineItems = append(req.LineItems, apiclient.LineItemPayload{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     decimal.Zero,
		})
	}
	invoiceID := sess.invoiceID
	sess.mu.Unlock()

	var inv model.Invoice
	if invoiceID != nil {
		inv, err = s.api.UpdateInvoice(ctx, *invoiceID, req)
	} else {
		inv, err = s.api.CreateInvoice(ctx, req)
	}
	if err != nil {
		// The draft stays open for retry.
		return model.Invoice{}, err
	}

	s.Discard(sessionID)
	s.log.Info("invoice submitted", slog.Int64("invoice", inv.ID), slog.String("number", inv.InvoiceNumber))
	return inv, nil
}

func (s *draftService) Discard(sessionID string) {
	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		if sess.invoiceID != nil {
			delete(s.byInvoice, *sess.invoiceID)
		}
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
}

// --- Helpers ---

func (s *draftService) session(id string) (*draftSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *draftService) mutate(sessionID string, fn func(*draft.Draft) error) (DraftState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return DraftState{}, err
	}

	sess.mu.Lock()
	if err := fn(sess.draft); err != nil {
		sess.mu.Unlock()
		return DraftState{}, err
	}
	sess.revision++
	state := s.snapshotLocked(sessionID, sess)
	sess.mu.Unlock()

	s.publish(sessionID, state)
	return state, nil
}

func (s *draftService) snapshot(sessionID string, sess *draftSession) DraftState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sessionID, sess)
}

func (s *draftService) snapshotLocked(sessionID string, sess *draftSession) DraftState {
	d := sess.draft
	state := DraftState{
		SessionID:      sessionID,
		InvoiceID:      sess.invoiceID,
		ClientID:       d.ClientID,
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		Currency:       d.Currency,
		CurrencySymbol: money.Symbol(d.Currency.String()),
		TemplateID:     model.NormalizeTemplateID(d.TemplateID),
		Discount:       money.Format(d.DiscountAmount),
		DiscountRaw:    money.EditingValue(d.DiscountAmount),
		Tax:            money.Format(d.TaxAmount),
		TaxRaw:         money.EditingValue(d.TaxAmount),
		Subtotal:       money.Format(d.Subtotal()),
		Total:          money.Format(d.Total()),
		Notes:          d.Notes,
		PaymentTerms:   d.PaymentTerms,
		Revision:       sess.revision,
	}
	for _, line := range d.LineItems {
		state.Lines = append(state.Lines, DraftLineState{
			Description:  line.Description,
			Quantity:     line.Quantity.String(),
			UnitPrice:    money.Format(line.UnitPrice),
			UnitPriceRaw: money.EditingValue(line.UnitPrice),
			Total:        money.Format(line.Total()),
		})
	}
	return state
}

// publish pushes the recomputed state to live preview subscribers. Delivery
// is best effort.
func (s *draftService) publish(sessionID string, state DraftState) {
	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return
	}
	s.notifier.PublishDraft(sessionID, payload)
}

func applyInvoice(d *draft.Draft, inv model.Invoice) {
	d.ClientID = inv.ClientID
	d.IssueDate = inv.IssueDate
	d.DueDate = inv.DueDate
	if inv.Currency.Valid() {
		d.Currency = inv.Currency
	}
	if inv.Notes != nil {
		d.Notes = *inv.Notes
	}
	if inv.PaymentTerms != nil {
		d.PaymentTerms = *inv.PaymentTerms
	}
	if len(inv.LineItems) > 0 {
		d.LineItems = append([]model.LineItem(nil), inv.LineItems...)
	}
}
