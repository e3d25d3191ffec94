package service

import (
	"context"
	"log/slog"

	"invoicer/internal/apiclient"
	"invoicer/internal/model"
	"invoicer/pkg/logging"
)

// --- DTOs ---

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

type ClientListResponse struct {
	Items      []model.Client `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// --- Interface ---

// ClientService exposes the server-owned client records for selection and
// editing. One canonical edit form; the record itself never lives locally.
type ClientService interface {
	List(ctx context.Context, page, pageSize int) (ClientListResponse, error)
	Create(ctx context.Context, req ClientRequest) (model.Client, error)
	Update(ctx context.Context, id int64, req ClientRequest) (model.Client, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (*model.Client, error)
}

type clientService struct {
	api *apiclient.Client
	log *slog.Logger
}

func NewClientService(api *apiclient.Client, logger *slog.Logger) ClientService {
	return &clientService{
		api: api,
		log: logger.With(logging.Module("clients")),
	}
}

// --- Implementation ---

func (s *clientService) List(ctx context.Context, page, pageSize int) (ClientListResponse, error) {
	resp, err := s.api.ListClients(ctx, page, pageSize)
	if err != nil {
		return ClientListResponse{}, err
	}
	return ClientListResponse{
		Items:      resp.Items,
		Total:      resp.Total,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}, nil
}

func (s *clientService) Create(ctx context.Context, req ClientRequest) (model.Client, error) {
	client, err := s.api.CreateClient(ctx, toClientPayload(req))
	if err != nil {
		return model.Client{}, err
	}
	s.log.Info("client created", slog.Int64("id", client.ID))
	return client, nil
}

func (s *clientService) Update(ctx context.Context, id int64, req ClientRequest) (model.Client, error) {
	client, err := s.api.UpdateClient(ctx, id, toClientPayload(req))
	if err != nil {
		return model.Client{}, err
	}
	s.log.Info("client updated", slog.Int64("id", id))
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.log.Info("client deleted", slog.Int64("id", id))
	return nil
}

// Find looks a client up by ID in the selector page. Returns nil when the
// client is not present, which previews render with placeholder text.
func (s *clientService) Find(ctx context.Context, id int64) (*model.Client, error) {
	if id == 0 {
		return nil, nil
	}
	resp, err := s.api.ListClients(ctx, 1, 100)
	if err != nil {
		return nil, err
	}
	for i := range resp.Items {
		if resp.Items[i].ID == id {
			return &resp.Items[i], nil
		}
	}
	return nil, nil
}

func toClientPayload(req ClientRequest) apiclient.ClientPayload {
	payload := apiclient.ClientPayload{Name: req.Name, Email: req.Email}
	if req.Phone != "" {
		payload.Phone = &req.Phone
	}
	if req.Address != "" {
		payload.Address = &req.Address
	}
	if req.TaxID != "" {
		payload.TaxID = &req.TaxID
	}
	return payload
}
