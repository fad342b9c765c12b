package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type TransactionService struct {
	client *client.Client
}

func NewTransactionService(c *client.Client) *TransactionService {
	return &TransactionService{client: c}
}

// List returns the user's transactions. A "YYYY-MM" month filter is split
// into the backend's due_date__month / due_date__year query parameters.
func (s *TransactionService) List(ctx context.Context, filters *models.TransactionFilters) ([]models.Transaction, error) {
	params := url.Values{}
	if filters != nil {
		if filters.TransactionType != "" {
			if err := validateTransactionType(filters.TransactionType); err != nil {
				return nil, err
			}
			params.Set("transaction_type", string(filters.TransactionType))
		}
		if filters.Month != "" {
			if err := validateMonth("month", filters.Month); err != nil {
				return nil, err
			}
			parts := strings.SplitN(filters.Month, "-", 2)
			params.Set("due_date__month", parts[1])
			params.Set("due_date__year", parts[0])
		}
	}

	path := "/transactions/transactions/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var transactions []models.Transaction
	if err := s.client.Get(ctx, path, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionService) Get(ctx context.Context, id int) (*models.TransactionDetail, error) {
	var detail models.TransactionDetail
	if err := s.client.Get(ctx, fmt.Sprintf("/transactions/transactions/%d/", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *TransactionService) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := requireField("transaction_identifier", req.TransactionIdentifier); err != nil {
		return nil, err
	}
	if err := validateAmount("total_amount", req.TotalAmount); err != nil {
		return nil, err
	}
	if err := validateDate("due_date", req.DueDate); err != nil {
		return nil, err
	}
	if err := validateTransactionType(req.TransactionType); err != nil {
		return nil, err
	}

	var transaction models.Transaction
	if err := s.client.Post(ctx, "/transactions/transactions/", req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) Update(ctx context.Context, id int, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.TotalAmount != nil {
		if err := validateAmount("total_amount", *req.TotalAmount); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if err := validateDate("due_date", *req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.TransactionType != nil {
		if err := validateTransactionType(*req.TransactionType); err != nil {
			return nil, err
		}
	}

	var transaction models.Transaction
	if err := s.client.Put(ctx, fmt.Sprintf("/transactions/transactions/%d/", id), req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/transactions/transactions/%d/", id))
}

// Stats aggregates totals for the month of filters.DueDate, or all time when
// no filter is given.
func (s *TransactionService) Stats(ctx context.Context, filters *models.TransactionStatsFilters) (*models.TransactionStats, error) {
	path := "/transactions/transactions/stats/"
	if filters != nil && filters.DueDate != "" {
		if err := validateDate("due_date", filters.DueDate); err != nil {
			return nil, err
		}
		params := url.Values{}
		params.Set("due_date", filters.DueDate)
		path += "?" + params.Encode()
	}

	var stats models.TransactionStats
	if err := s.client.Get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Pay toggles the paid state of a transaction. With updateSubTransactions the
// toggle cascades to its sub-transactions.
func (s *TransactionService) Pay(ctx context.Context, id int, updateSubTransactions bool) (*models.MessageResponse, error) {
	body := map[string]bool{"update_sub_transactions": updateSubTransactions}

	var resp models.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/transactions/transactions/%d/pay/", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecalculateAmount sets the transaction total to the sum of its
// sub-transaction amounts.
func (s *TransactionService) RecalculateAmount(ctx context.Context, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/transactions/transactions/%d/recalculate_amount/", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GuessSubTransactionsCategory asks the backend's AI to categorize the
// transaction's uncategorized sub-transactions.
func (s *TransactionService) GuessSubTransactionsCategory(ctx context.Context, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/transactions/transactions/%d/guess_sub_transactions_category/", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
