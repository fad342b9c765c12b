package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type ActorService struct {
	client *client.Client
}

func NewActorService(c *client.Client) *ActorService {
	return &ActorService{client: c}
}

func (s *ActorService) List(ctx context.Context) ([]models.Actor, error) {
	var actors []models.Actor
	if err := s.client.Get(ctx, "/transactions/actors/", &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

func (s *ActorService) Get(ctx context.Context, id int) (*models.Actor, error) {
	var actor models.Actor
	if err := s.client.Get(ctx, fmt.Sprintf("/transactions/actors/%d/", id), &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *ActorService) Create(ctx context.Context, req models.CreateActorRequest) (*models.Actor, error) {
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}

	var actor models.Actor
	if err := s.client.Post(ctx, "/transactions/actors/", req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *ActorService) Update(ctx context.Context, id int, req models.UpdateActorRequest) (*models.Actor, error) {
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}

	var actor models.Actor
	if err := s.client.Put(ctx, fmt.Sprintf("/transactions/actors/%d/", id), req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *ActorService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/transactions/actors/%d/", id))
}

// Stats aggregates per-actor spending, optionally bounded to a due-date
// range on the parent transactions.
func (s *ActorService) Stats(ctx context.Context, filters *models.ActorStatsFilters) (*models.ActorStats, error) {
	params := url.Values{}
	if filters != nil {
		if filters.DueDateStart != "" {
			if err := validateDate("due_date_start", filters.DueDateStart); err != nil {
				return nil, err
			}
			params.Set("due_date_start", filters.DueDateStart)
		}
		if filters.DueDateEnd != "" {
			if err := validateDate("due_date_end", filters.DueDateEnd); err != nil {
				return nil, err
			}
			params.Set("due_date_end", filters.DueDateEnd)
		}
	}

	path := "/transactions/actors/stats/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var stats models.ActorStats
	if err := s.client.Get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
