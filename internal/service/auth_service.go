package service

import (
	"context"
	"log/slog"

	"invoicer/internal/apiclient"
	"invoicer/internal/model"
	"invoicer/internal/token"
	"invoicer/pkg/logging"
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	CompanyName string `json:"company_name"`
}

type SessionResponse struct {
	User model.User `json:"user"`
}

// --- Interface ---

// AuthService drives the login lifecycle against the backend. Token issuance
// and verification are server concerns; locally we only hold the issued pair.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Register(ctx context.Context, req RegisterRequest) (SessionResponse, error)
	CurrentUser(ctx context.Context) (model.User, error)
	Logout() error
}

type authService struct {
	api    *apiclient.Client
	tokens *token.Store
	log    *slog.Logger
}

func NewAuthService(api *apiclient.Client, tokens *token.Store, logger *slog.Logger) AuthService {
	return &authService{
		api:    api,
		tokens: tokens,
		log:    logger.With(logging.Module("auth")),
	}
}

// --- Implementation ---

func (s *authService) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	resp, err := s.api.Login(ctx, apiclient.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return SessionResponse{}, err
	}

	if err := s.tokens.Set(token.Pair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return SessionResponse{}, err
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return SessionResponse{}, err
	}

	s.log.Info("logged in", slog.String("email", req.Email))
	return SessionResponse{User: user}, nil
}

// Register creates the account and then logs in with the same credentials as
// one composed operation.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	payload := apiclient.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.CompanyName != "" {
		payload.CompanyName = &req.CompanyName
	}

	if _, err := s.api.Register(ctx, payload); err != nil {
		return SessionResponse{}, err
	}

	return s.Login(ctx, LoginRequest{Email: req.Email, Password: req.Password})
}

func (s *authService) CurrentUser(ctx context.Context) (model.User, error) {
	return s.api.Me(ctx)
}

func (s *authService) Logout() error {
	s.log.Info("logged out")
	return s.tokens.Clear()
}
