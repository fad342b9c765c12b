package services

import (
	"context"
	"fmt"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type SubTransactionService struct {
	client *client.Client
}

func NewSubTransactionService(c *client.Client) *SubTransactionService {
	return &SubTransactionService{client: c}
}

func (s *SubTransactionService) List(ctx context.Context) ([]models.SubTransaction, error) {
	var subs []models.SubTransaction
	if err := s.client.Get(ctx, "/transactions/sub_transactions/", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubTransactionService) Get(ctx context.Context, id int) (*models.SubTransaction, error) {
	var sub models.SubTransaction
	if err := s.client.Get(ctx, fmt.Sprintf("/transactions/sub_transactions/%d/", id), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubTransactionService) Create(ctx context.Context, req models.CreateSubTransactionRequest) (*models.SubTransaction, error) {
	if err := requireField("description", req.Description); err != nil {
		return nil, err
	}
	if err := validateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if err := validateDate("date", req.Date); err != nil {
		return nil, err
	}
	if req.TransactionID <= 0 {
		return nil, fmt.Errorf("transaction_id is required")
	}

	var sub models.SubTransaction
	if err := s.client.Post(ctx, "/transactions/sub_transactions/", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubTransactionService) Update(ctx context.Context, id int, req models.UpdateSubTransactionRequest) (*models.SubTransaction, error) {
	if req.Amount != nil {
		if err := validateAmount("amount", *req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		if err := validateDate("date", *req.Date); err != nil {
			return nil, err
		}
	}

	var sub models.SubTransaction
	if err := s.client.Put(ctx, fmt.Sprintf("/transactions/sub_transactions/%d/", id), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubTransactionService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/transactions/sub_transactions/%d/", id))
}

// Pay toggles the paid state of a sub-transaction.
func (s *SubTransactionService) Pay(ctx context.Context, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/transactions/sub_transactions/%d/pay/", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
