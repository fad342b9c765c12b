package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fintrack-labs/fintrack-go/models"
)

// Client-side validation: catch malformed input before any network call is
// made. The server remains the source of truth for business rules.

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// validateAmount accepts the backend's decimal-string format and rejects
// non-numeric or non-positive values.
func validateAmount(name, value string) error {
	if err := requireField(name, value); err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number", name)
	}
	if amount <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

func validateDate(name, value string) error {
	if err := requireField(name, value); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return nil
}

func validateMonth(name, value string) error {
	if _, err := time.Parse("2006-01", value); err != nil {
		return fmt.Errorf("%s must be in YYYY-MM format", name)
	}
	return nil
}

func validateTransactionType(t models.TransactionType) error {
	if !t.Valid() {
		return fmt.Errorf("transaction_type must be %q or %q", models.TransactionIncoming, models.TransactionOutgoing)
	}
	return nil
}
