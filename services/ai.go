package services

import (
	"context"
	"net/url"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

// AIService exposes the backend's usage/cost telemetry, read-only.
type AIService struct {
	client *client.Client
}

func NewAIService(c *client.Client) *AIService {
	return &AIService{client: c}
}

func aiQuery(filters *models.AIDateFilters, withModel bool) string {
	if filters == nil {
		return ""
	}
	params := url.Values{}
	if filters.DueDateStart != "" {
		params.Set("due_date_start", filters.DueDateStart)
	}
	if filters.DueDateEnd != "" {
		params.Set("due_date_end", filters.DueDateEnd)
	}
	if withModel && filters.Model != "" {
		params.Set("model", filters.Model)
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

func (s *AIService) Calls(ctx context.Context, filters *models.AIDateFilters) ([]models.AICallItem, error) {
	var calls []models.AICallItem
	if err := s.client.Get(ctx, "/ai/ai-calls/"+aiQuery(filters, true), &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func (s *AIService) CallsStats(ctx context.Context, filters *models.AIDateFilters) (*models.AICallsStats, error) {
	var stats models.AICallsStats
	if err := s.client.Get(ctx, "/ai/ai-calls/stats/"+aiQuery(filters, true), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AIService) Embeddings(ctx context.Context, filters *models.AIDateFilters) ([]models.EmbeddingItem, error) {
	var embeddings []models.EmbeddingItem
	if err := s.client.Get(ctx, "/ai/embeddings/"+aiQuery(filters, false), &embeddings); err != nil {
		return nil, err
	}
	return embeddings, nil
}

func (s *AIService) EmbeddingsStats(ctx context.Context, filters *models.AIDateFilters) (*models.EmbeddingsStats, error) {
	var stats models.EmbeddingsStats
	if err := s.client.Get(ctx, "/ai/embeddings/stats/"+aiQuery(filters, false), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
