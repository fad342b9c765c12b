package services

import (
	"context"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type AuthService struct {
	client *client.Client
}

func NewAuthService(c *client.Client) *AuthService {
	return &AuthService{client: c}
}

// Login authenticates with email/password and persists the returned token
// pair in the client's token store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if err := requireField("email", email); err != nil {
		return nil, err
	}
	if err := requireField("password", password); err != nil {
		return nil, err
	}

	var resp models.LoginResponse
	if err := s.client.Post(ctx, "/auth/login/", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := s.client.Tokens.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := requireField("email", req.Email); err != nil {
		return nil, err
	}
	if err := requireField("password", req.Password); err != nil {
		return nil, err
	}
	if err := requireField("first_name", req.FirstName); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.Post(ctx, "/user/register/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh eagerly renews the stored session, reporting success. A failed
// refresh leaves the stored tokens untouched.
func (s *AuthService) Refresh(ctx context.Context) bool {
	return s.client.Refresh(ctx)
}

// Logout discards the stored session.
func (s *AuthService) Logout() error {
	return s.client.Tokens.ClearTokens()
}
