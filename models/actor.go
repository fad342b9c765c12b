package models

// ============================================================================
// ACTOR MODEL
// An actor is a third party who incurred part of a charge on the user's
// account; total_spent is derived server-side from their sub-transactions.
// ============================================================================

type Actor struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	SubTransactions []SubTransaction `json:"sub_transactions,omitempty"`
	TotalSpent      float64          `json:"total_spent,omitempty"`
}

type CreateActorRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateActorRequest struct {
	Name string `json:"name" binding:"required"`
}

// ActorStatsFilters narrows Stats to a due-date range on the parent
// transactions ("YYYY-MM-DD" bounds, inclusive).
type ActorStatsFilters struct {
	DueDateStart string
	DueDateEnd   string
}

type ActorStats struct {
	TotalSpent            float64 `json:"total_spent"`
	TotalSpentPaid        float64 `json:"total_spent_paid"`
	BiggestSpender        string  `json:"biggest_spender"`
	BiggestSpenderAmount  float64 `json:"biggest_spender_amount"`
	SmallestSpender       string  `json:"smallest_spender"`
	SmallestSpenderAmount float64 `json:"smallest_spender_amount"`
	AverageSpent          float64 `json:"average_spent"`
	ActiveActors          int     `json:"active_actors"`
}
