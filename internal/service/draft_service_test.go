package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"invoicer/internal/apiclient"
	"invoicer/internal/draft"
	"invoicer/internal/model"
	"invoicer/internal/render"
)

type captureNotifier struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (c *captureNotifier) PublishDraft(sessionID string, payload []byte) {
	c.mu.Lock()
	c.payloads = append(c.payloads, payload)
	c.mu.Unlock()
}

func (c *captureNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

type draftEnv struct {
	drafts   DraftService
	notifier *captureNotifier
	backend  testEnv
}

func newDraftEnv(t *testing.T, handler http.Handler) draftEnv {
	t.Helper()
	env := newEnv(t, handler)
	notifier := &captureNotifier{}
	auth := NewAuthService(env.api, env.tokens, testLogger())
	clients := NewClientService(env.api, testLogger())
	drafts := NewDraftService(env.api, clients, auth, render.NewHTMLRenderer(), notifier, testLogger())
	return draftEnv{drafts: drafts, notifier: notifier, backend: env}
}

func sampleBackend(t *testing.T) (*http.ServeMux, *apiclient.CreateInvoiceRequest, *atomic.Int64) {
	t.Helper()
	var submitted apiclient.CreateInvoiceRequest
	var submits atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "ada", "email": "ada@acme.test",
			"company_name": "Acme Ltd", "preferred_currency": "USD",
		})
	})
	mux.HandleFunc("GET /api/v1/clients", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": 3, "name": "Globex", "email": "ap@globex.test"},
			},
			"total": 1, "page": 1, "page_size": 100, "total_pages": 1,
		})
	})
	mux.HandleFunc("POST /api/v1/invoices", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		submits.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 42, "invoice_number": "INV-2025-00042", "status": "draft",
			"currency": "USD", "amount": 30,
		})
	})
	return mux, &submitted, &submits
}

func TestCreateSeedsDefaultLine(t *testing.T) {
	env := newDraftEnv(t, http.NewServeMux())

	state := env.drafts.Create(model.CurrencyUSD)

	if len(state.Lines) != 1 {
		t.Fatalf("new draft has %d lines, want 1", len(state.Lines))
	}
	if state.Lines[0].Quantity != "1" || state.Lines[0].Total != "0.00" {
		t.Fatalf("unexpected seed line: %+v", state.Lines[0])
	}
	if state.TemplateID != model.DefaultTemplateID {
		t.Fatalf("template = %d, want default", state.TemplateID)
	}
	if state.Total != "0.00" || state.CurrencySymbol != "$" {
		t.Fatalf("unexpected totals: %+v", state)
	}
}

func TestMutationsRecomputeTotals(t *testing.T) {
	env := newDraftEnv(t, http.NewServeMux())
	state := env.drafts.Create(model.CurrencyUSD)

	state, err := env.drafts.UpdateLine(state.SessionID, 0, UpdateLineRequest{
		Quantity:  strPtr("3"),
		UnitPrice: strPtr("10"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.Subtotal != "30.00" {
		t.Fatalf("subtotal = %q, want 30.00", state.Subtotal)
	}

	state, err = env.drafts.UpdateDetails(state.SessionID, DraftDetailsRequest{
		DiscountAmount: strPtr("5"),
		TaxAmount:      strPtr("2"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.Total != "27.00" {
		t.Fatalf("total = %q, want 27.00 (30 - 5 + 2)", state.Total)
	}
	if state.Revision != 2 {
		t.Fatalf("revision = %d, want 2", state.Revision)
	}
	if env.notifier.count() != 2 {
		t.Fatalf("published %d states, want 2", env.notifier.count())
	}
}

func TestUpdateLineCoercesGarbageInput(t *testing.T) {
	env := newDraftEnv(t, http.NewServeMux())
	state := env.drafts.Create(model.CurrencyUSD)

	state, err := env.drafts.UpdateLine(state.SessionID, 0, UpdateLineRequest{
		Quantity:  strPtr("2"),
		UnitPrice: strPtr("twelve dollars"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.Lines[0].UnitPrice != "0.00" || state.Lines[0].Total != "0.00" {
		t.Fatalf("garbage price should coerce to zero, got %+v", state.Lines[0])
	}
}

func TestRemoveLastLineRejected(t *testing.T) {
	env := newDraftEnv(t, http.NewServeMux())
	state := env.drafts.Create(model.CurrencyNGN)

	if _, err := env.drafts.RemoveLine(state.SessionID, 0); !errors.Is(err, draft.ErrLastLine) {
		t.Fatalf("err = %v, want ErrLastLine", err)
	}
}

func TestUpdateDetailsRejectsUnknownCurrency(t *testing.T) {
	env := newDraftEnv(t, http.NewServeMux())
	state := env.drafts.Create(model.CurrencyUSD)

	if _, err := env.drafts.UpdateDetails(state.SessionID, DraftDetailsRequest{Currency: strPtr("JPY")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSubmitValidatesBeforeNetwork(t *testing.T) {
	mux, _, submits := sampleBackend(t)
	env := newDraftEnv(t, mux)
	state := env.drafts.Create(model.CurrencyUSD)

	if _, err := env.drafts.Submit(context.Background(), state.SessionID); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if submits.Load() != 0 {
		t.Fatal("validation failure must not reach the backend")
	}
	// The draft survives a failed submit.
	if _, err := env.drafts.Get(state.SessionID); err != nil {
		t.Fatalf("session should still exist: %v", err)
	}
}

func TestSubmitSendsZeroLineTaxAndClosesSession(t *testing.T) {
	mux, submitted, submits := sampleBackend(t)
	env := newDraftEnv(t, mux)
	state := env.drafts.Create(model.CurrencyUSD)

	if _, err := env.drafts.UpdateLine(state.SessionID, 0, UpdateLineRequest{
		Description: strPtr("Widgets"),
		Quantity:    strPtr("3"),
		UnitPrice:   strPtr("10"),
		TaxRate:     strPtr("7.5"),
	}); err != nil {
		t.Fatal(err)
	}
	clientID := int64(3)
	if _, err := env.drafts.UpdateDetails(state.SessionID, DraftDetailsRequest{
		ClientID:  &clientID,
		IssueDate: strPtr("2025-03-01"),
		DueDate:   strPtr("2025-03-15"),
	}); err != nil {
		t.Fatal(err)
	}

	inv, err := env.drafts.Submit(context.Background(), state.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if inv.InvoiceNumber != "INV-2025-00042" {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if submits.Load() != 1 {
		t.Fatalf("submits = %d, want 1", submits.Load())
	}
	if submitted.ClientID != 3 || len(submitted.LineItems) != 1 {
		t.Fatalf("unexpected submission: %+v", submitted)
	}
	if !submitted.LineItems[0].TaxRate.IsZero() {
		t.Fatalf("line tax_rate = %s, want 0", submitted.LineItems[0].TaxRate)
	}
	if !submitted.LineItems[0].Quantity.Equal(mustDec("3")) {
		t.Fatalf("line quantity = %s, want 3", submitted.LineItems[0].Quantity)
	}

	if _, err := env.drafts.Get(state.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("session should close after submit, got %v", err)
	}
}

func TestBeginEditHydratesFromInvoice(t *testing.T) {
	mux, _, _ := sampleBackend(t)
	var updated apiclient.CreateInvoiceRequest
	mux.HandleFunc("GET /api/v1/invoices/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "client_id": 3, "invoice_number": "INV-2025-00007",
			"status": "draft", "currency": "EUR", "amount": 100,
			"issue_date": "2025-01-01", "due_date": "2025-01-31",
			"line_items": []map[string]any{
				{"id": 1, "description": "Hosting", "quantity": 2, "unit_price": 50, "tax_rate": 0},
			},
		})
	})
	mux.HandleFunc("PUT /api/v1/invoices/7", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			t.Errorf("decode update: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "invoice_number": "INV-2025-00007", "currency": "EUR"})
	})
	env := newDraftEnv(t, mux)

	state, err := env.drafts.BeginEdit(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if state.InvoiceID == nil || *state.InvoiceID != 7 {
		t.Fatalf("invoice id not tracked: %+v", state)
	}
	if state.ClientID != 3 || state.Currency != model.CurrencyEUR || state.Subtotal != "100.00" {
		t.Fatalf("hydrated state wrong: %+v", state)
	}

	if _, err := env.drafts.Submit(context.Background(), state.SessionID); err != nil {
		t.Fatal(err)
	}
	if updated.ClientID != 3 || len(updated.LineItems) != 1 {
		t.Fatalf("edit submit should PUT the existing invoice, got %+v", updated)
	}
}

func TestStaleHydrateDoesNotClobberLocalEdits(t *testing.T) {
	fetchEntered := make(chan struct{})
	releaseFetch := make(chan struct{})
	var fetches atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/invoices/7", func(w http.ResponseWriter, r *http.Request) {
		if fetches.Add(1) == 2 {
			// Second hydrate stalls until the local edit lands.
			close(fetchEntered)
			<-releaseFetch
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "client_id": 3, "currency": "USD",
			"issue_date": "2025-01-01", "due_date": "2025-01-31",
			"line_items": []map[string]any{
				{"description": "Server copy", "quantity": 1, "unit_price": 10, "tax_rate": 0},
			},
		})
	})
	env := newDraftEnv(t, mux)

	state, err := env.drafts.BeginEdit(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan DraftState, 1)
	go func() {
		s, err := env.drafts.BeginEdit(context.Background(), 7)
		if err != nil {
			t.Error(err)
		}
		done <- s
	}()

	<-fetchEntered
	if _, err := env.drafts.UpdateLine(state.SessionID, 0, UpdateLineRequest{Description: strPtr("Local edit")}); err != nil {
		t.Fatal(err)
	}
	close(releaseFetch)

	final := <-done
	if final.SessionID != state.SessionID {
		t.Fatal("reopening an invoice should reuse its session")
	}
	if final.Lines[0].Description != "Local edit" {
		t.Fatalf("stale server copy overwrote local edit: %+v", final.Lines[0])
	}
}

func TestPreviewRendersClientAndTotals(t *testing.T) {
	mux, _, _ := sampleBackend(t)
	env := newDraftEnv(t, mux)
	state := env.drafts.Create(model.CurrencyUSD)

	if _, err := env.drafts.UpdateLine(state.SessionID, 0, UpdateLineRequest{
		Description: strPtr("Widgets"),
		Quantity:    strPtr("3"),
		UnitPrice:   strPtr("10"),
	}); err != nil {
		t.Fatal(err)
	}
	clientID := int64(3)
	if _, err := env.drafts.UpdateDetails(state.SessionID, DraftDetailsRequest{ClientID: &clientID}); err != nil {
		t.Fatal(err)
	}

	html, err := env.drafts.PreviewHTML(context.Background(), state.SessionID, model.TemplateModern)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Globex", "Acme Ltd", "$30.00", "Widgets"} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q", want)
		}
	}
}
