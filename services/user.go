package services

import (
	"context"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type UserService struct {
	client *client.Client
}

func NewUserService(c *client.Client) *UserService {
	return &UserService{client: c}
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/user/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.client.Put(ctx, "/user/me/profile/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
