package mockapi

import (
	"fmt"

	"github.com/fintrack-labs/fintrack-go/models"
	"github.com/fintrack-labs/fintrack-go/utils"
)

// DemoEmail and DemoPassword are the credentials of the seeded account.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
)

// Seed loads the demo dataset: one user, a handful of actors and two months
// of transactions with itemized breakdowns, plus AI usage rows so every
// screen has something to show.
func (s *Store) Seed() error {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("seed: hash demo password: %w", err)
	}

	user, err := s.CreateUser(DemoEmail, "Demo", "User", hash)
	if err != nil {
		return fmt.Errorf("seed: create demo user: %w", err)
	}
	bio := "Conta de demonstração"
	salary := 8500.0
	s.UpdateProfile(user.ID, models.UpdateProfileRequest{Bio: &bio, Salary: &salary})

	ana := s.CreateActor("Ana")
	bruno := s.CreateActor("Bruno")
	carla := s.CreateActor("Carla")
	s.CreateActor("Diego")
	s.CreateActor("Elisa")

	s.mu.Lock()
	defer s.mu.Unlock()

	addTransaction := func(t models.Transaction) int {
		t.ID = s.nextTransactionID
		t.CreatedAt = now()
		s.nextTransactionID++
		s.transactions = append(s.transactions, t)
		return t.ID
	}
	addSub := func(sub models.SubTransaction) {
		sub.ID = s.nextSubID
		s.nextSubID++
		if sub.ActorID != 0 {
			sub.Actor = s.actorRefLocked(sub.ActorID)
		}
		s.subTransactions = append(s.subTransactions, sub)
	}

	addTransaction(models.Transaction{
		DueDate:               "2026-01-05",
		TotalAmount:           "8500.00",
		TransactionIdentifier: "salario-2026-01",
		TransactionType:       models.TransactionIncoming,
		IsSalary:              true,
		IsRecurrent:           true,
		PaidAt:                "2026-01-05T09:00:00Z",
		IsPaid:                true,
	})

	cardJan := addTransaction(models.Transaction{
		DueDate:               "2026-01-10",
		TotalAmount:           "2347.80",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionType:       models.TransactionOutgoing,
	})
	addSub(models.SubTransaction{
		Date:                  "2026-01-02",
		Description:           "Supermercado Pão de Açúcar",
		Amount:                "487.35",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionID:         cardJan,
		Category:              "food_grocery",
	})
	addSub(models.SubTransaction{
		Date:                  "2026-01-03",
		Description:           "Netflix assinatura mensal",
		Amount:                "55.90",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionID:         cardJan,
		Category:              "subscriptions",
	})
	addSub(models.SubTransaction{
		Date:                  "2026-01-04",
		Description:           "Posto Shell combustível",
		Amount:                "250.00",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionID:         cardJan,
		Category:              "transport_fuel",
	})
	addSub(models.SubTransaction{
		Date:                    "2026-01-06",
		Description:             "Restaurante Outback",
		Amount:                  "189.50",
		InstallmentInfo:         "1/2",
		TransactionIdentifier:   "fatura-cartao-2026-01",
		TransactionID:           cardJan,
		ActorID:                 ana.ID,
		UserProvidedDescription: "Jantar com a Ana",
		Category:                "food_restaurant",
	})
	addSub(models.SubTransaction{
		Date:                  "2026-01-08",
		Description:           "Amazon BR compra online",
		Amount:                "320.45",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionID:         cardJan,
		ActorID:               bruno.ID,
		Category:              "personal_shopping",
	})
	addSub(models.SubTransaction{
		Date:                  "2026-01-09",
		Description:           "Farmácia Droga Raia",
		Amount:                "94.60",
		TransactionIdentifier: "fatura-cartao-2026-01",
		TransactionID:         cardJan,
	})

	addTransaction(models.Transaction{
		DueDate:               "2026-01-15",
		TotalAmount:           "1800.00",
		TransactionIdentifier: "aluguel-2026-01",
		TransactionType:       models.TransactionOutgoing,
		IsRecurrent:           true,
		Category:              "housing_rent",
	})

	addTransaction(models.Transaction{
		DueDate:               "2026-01-20",
		TotalAmount:           "230.00",
		TransactionIdentifier: "conta-luz-2026-01",
		TransactionType:       models.TransactionOutgoing,
		IsRecurrent:           true,
		Category:              "bill_electricity",
	})

	addTransaction(models.Transaction{
		DueDate:               "2025-12-05",
		TotalAmount:           "8500.00",
		TransactionIdentifier: "salario-2025-12",
		TransactionType:       models.TransactionIncoming,
		IsSalary:              true,
		IsRecurrent:           true,
		PaidAt:                "2025-12-05T09:00:00Z",
		IsPaid:                true,
	})

	cardDec := addTransaction(models.Transaction{
		DueDate:               "2025-12-10",
		TotalAmount:           "1975.20",
		TransactionIdentifier: "fatura-cartao-2025-12",
		TransactionType:       models.TransactionOutgoing,
		PaidAt:                "2025-12-10T14:30:00Z",
		IsPaid:                true,
	})
	addSub(models.SubTransaction{
		Date:                  "2025-12-02",
		Description:           "Supermercado Carrefour",
		Amount:                "612.40",
		TransactionIdentifier: "fatura-cartao-2025-12",
		TransactionID:         cardDec,
		PaidAt:                "2025-12-10T14:30:00Z",
		Category:              "food_grocery",
	})
	addSub(models.SubTransaction{
		Date:                  "2025-12-14",
		Description:           "Uber viagens dezembro",
		Amount:                "87.30",
		TransactionIdentifier: "fatura-cartao-2025-12",
		TransactionID:         cardDec,
		PaidAt:                "2025-12-10T14:30:00Z",
		ActorID:               carla.ID,
		Category:              "transport_apps",
	})
	addSub(models.SubTransaction{
		Date:                  "2025-12-20",
		Description:           "Presentes de Natal Amazon",
		Amount:                "540.00",
		InstallmentInfo:       "1/3",
		TransactionIdentifier: "fatura-cartao-2025-12",
		TransactionID:         cardDec,
		PaidAt:                "2025-12-10T14:30:00Z",
		Category:              "personal_shopping",
	})

	s.bills = append(s.bills, models.Bill{
		ID:          s.nextBillID,
		FileName:    "fatura-cartao-2026-01.pdf",
		UploadDate:  "2026-01-01",
		TotalAmount: "2347.80",
		DueDate:     "2026-01-10",
	})
	s.nextBillID++
	// Tie the seeded bill to its card transaction.
	for i := range s.transactions {
		if s.transactions[i].ID == cardJan {
			s.transactions[i].File = s.nextBillID - 1
		}
	}

	s.embeddings = append(s.embeddings,
		models.EmbeddingItem{
			ID:               1,
			CreatedAt:        "2026-01-02T10:00:00Z",
			UpdatedAt:        "2026-01-02T10:00:00Z",
			Model:            "text-embedding-3-small",
			TotalTokens:      420,
			PromptUsedTokens: 420,
			Price:            0.0000084,
		},
		models.EmbeddingItem{
			ID:               2,
			CreatedAt:        "2026-01-03T11:30:00Z",
			UpdatedAt:        "2026-01-03T11:30:00Z",
			Model:            "text-embedding-3-small",
			TotalTokens:      380,
			PromptUsedTokens: 380,
			Price:            0.0000076,
		},
	)

	return nil
}
