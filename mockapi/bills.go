package mockapi

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrack-labs/fintrack-go/models"
)

// ============================================================================
// BILLS
// Uploads are not parsed; each one becomes a bill row plus a transaction
// with a couple of placeholder line items, mimicking what the real reader
// pipeline produces.
// ============================================================================

func (s *Store) ListBills() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]models.Bill, len(s.bills))
	copy(bills, s.bills)
	return bills
}

func (s *Store) GetBillDetail(id int) (*models.BillDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bill := range s.bills {
		if bill.ID != id {
			continue
		}
		detail := models.BillDetail{Bill: bill, Transactions: []models.SubTransaction{}}
		for _, t := range s.transactions {
			if t.File != bill.ID {
				continue
			}
			for _, sub := range s.subTransactions {
				if sub.TransactionID == t.ID {
					detail.Transactions = append(detail.Transactions, sub)
				}
			}
		}
		return &detail, true
	}
	return nil, false
}

// IngestBill registers an uploaded file and fabricates the transaction the
// reader pipeline would have extracted from it. The returned message matches
// the backend's upload acknowledgment.
func (s *Store) IngestBill(fileName string) models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	identifier := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + "-" + uuid.NewString()[:8]

	bill := models.Bill{
		ID:          s.nextBillID,
		FileName:    fileName,
		UploadDate:  today(),
		TotalAmount: "0.00",
		DueDate:     today(),
	}
	s.nextBillID++

	transaction := models.Transaction{
		ID:                    s.nextTransactionID,
		DueDate:               bill.DueDate,
		TotalAmount:           "0.00",
		TransactionIdentifier: identifier,
		TransactionType:       models.TransactionOutgoing,
		File:                  bill.ID,
		CreatedAt:             now(),
	}
	s.nextTransactionID++

	items := []struct {
		description string
		amount      string
	}{
		{"Item importado 1", "120.00"},
		{"Item importado 2", "58.90"},
	}
	total := 0.0
	for _, item := range items {
		s.subTransactions = append(s.subTransactions, models.SubTransaction{
			ID:                    s.nextSubID,
			Date:                  bill.DueDate,
			Description:           item.description,
			Amount:                item.amount,
			TransactionIdentifier: identifier,
			TransactionID:         transaction.ID,
		})
		s.nextSubID++
		total += parseAmount(item.amount)
	}

	transaction.TotalAmount = formatAmount(total)
	bill.TotalAmount = transaction.TotalAmount
	s.transactions = append(s.transactions, transaction)
	s.bills = append(s.bills, bill)
	return bill
}
