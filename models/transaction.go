package models

// ============================================================================
// TRANSACTION MODELS
// Amounts travel as decimal strings ("1234.56"), exactly as the backend
// serializes them.
// ============================================================================

type TransactionType string

const (
	TransactionIncoming TransactionType = "incoming"
	TransactionOutgoing TransactionType = "outgoing"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncoming || t == TransactionOutgoing
}

type Transaction struct {
	ID                    int             `json:"id"`
	DueDate               string          `json:"due_date"`
	TotalAmount           string          `json:"total_amount"`
	TransactionIdentifier string          `json:"transaction_identifier"`
	TransactionType       TransactionType `json:"transaction_type"`
	IsSalary              bool            `json:"is_salary"`
	IsRecurrent           bool            `json:"is_recurrent"`
	RecurrenceCount       int             `json:"recurrence_count,omitempty"`
	File                  int             `json:"file,omitempty"`
	CreatedAt             string          `json:"created_at,omitempty"`
	AmountFromActor       float64         `json:"amount_from_actor,omitempty"`
	PaidAt                string          `json:"paid_at,omitempty"`
	SubTransactionsPaid   bool            `json:"subtransactions_paid,omitempty"`
	IsPaid                bool            `json:"is_paid,omitempty"`
	Category              string          `json:"category,omitempty"`
}

// TransactionDetail is a Transaction expanded with its itemized breakdown.
type TransactionDetail struct {
	Transaction
	SubTransactions   []SubTransaction `json:"sub_transactions"`
	InstallmentNumber int              `json:"installment_number,omitempty"`
	MainTransaction   *int             `json:"main_transaction,omitempty"`
}

type SubTransaction struct {
	ID                      int    `json:"id"`
	Date                    string `json:"date"`
	Description             string `json:"description"`
	Amount                  string `json:"amount"`
	InstallmentInfo         string `json:"installment_info,omitempty"`
	TransactionIdentifier   string `json:"transaction_identifier,omitempty"`
	TransactionID           int    `json:"transaction_id"`
	ActorID                 int    `json:"actor_id,omitempty"`
	Actor                   *Actor `json:"actor,omitempty"`
	UserProvidedDescription string `json:"user_provided_description,omitempty"`
	PaidAt                  string `json:"paid_at,omitempty"`
	Category                string `json:"category,omitempty"`
}

// ============================================================================
// FILTERS & STATS
// ============================================================================

// TransactionFilters narrows List results. Month is "YYYY-MM" and is split
// into due_date__month / due_date__year query parameters by the wrapper.
type TransactionFilters struct {
	TransactionType TransactionType
	Month           string
}

// TransactionStatsFilters narrows Stats. DueDate is "YYYY-MM-DD"; the backend
// only uses its year and month.
type TransactionStatsFilters struct {
	DueDate string
}

type TransactionStats struct {
	IncomingTotal          float64 `json:"incoming_total"`
	OutgoingTotal          float64 `json:"outgoing_total"`
	IncomingTotalPaid      float64 `json:"incoming_total_paid"`
	Balance                float64 `json:"balance"`
	OutgoingFromActors     float64 `json:"outgoing_from_actors"`
	OutgoingFromActorsPaid float64 `json:"outgoing_from_actors_paid"`
}

// ============================================================================
// MUTATION REQUESTS
// ============================================================================

type CreateTransactionRequest struct {
	DueDate               string          `json:"due_date" binding:"required"`
	TotalAmount           string          `json:"total_amount" binding:"required"`
	TransactionIdentifier string          `json:"transaction_identifier" binding:"required"`
	TransactionType       TransactionType `json:"transaction_type" binding:"required"`
	IsSalary              bool            `json:"is_salary"`
	IsRecurrent           bool            `json:"is_recurrent"`
	RecurrenceCount       int             `json:"recurrence_count,omitempty"`
	Category              string          `json:"category,omitempty"`
}

type UpdateTransactionRequest struct {
	DueDate               *string          `json:"due_date,omitempty"`
	TotalAmount           *string          `json:"total_amount,omitempty"`
	TransactionIdentifier *string          `json:"transaction_identifier,omitempty"`
	TransactionType       *TransactionType `json:"transaction_type,omitempty"`
	IsSalary              *bool            `json:"is_salary,omitempty"`
	IsRecurrent           *bool            `json:"is_recurrent,omitempty"`
	Category              *string          `json:"category,omitempty"`
}

type CreateSubTransactionRequest struct {
	Date                    string `json:"date" binding:"required"`
	Description             string `json:"description" binding:"required"`
	Amount                  string `json:"amount" binding:"required"`
	InstallmentInfo         string `json:"installment_info,omitempty"`
	TransactionID           int    `json:"transaction_id" binding:"required"`
	ActorID                 int    `json:"actor_id,omitempty"`
	UserProvidedDescription string `json:"user_provided_description,omitempty"`
	Category                string `json:"category,omitempty"`
}

type UpdateSubTransactionRequest struct {
	Date                    *string  `json:"date,omitempty"`
	Description             *string  `json:"description,omitempty"`
	Amount                  *string  `json:"amount,omitempty"`
	InstallmentInfo         *string  `json:"installment_info,omitempty"`
	ActorID                 *int     `json:"actor_id,omitempty"`
	UserProvidedDescription *string  `json:"user_provided_description,omitempty"`
	Category                *string  `json:"category,omitempty"`
	ActorAmount             *float64 `json:"actor_amount,omitempty"`
	ShouldDivideForActor    *bool    `json:"should_divide_for_actor,omitempty"`
}

// MessageResponse is the backend's generic {"message": "..."} acknowledgment,
// returned by pay/recalculate/guess operations.
type MessageResponse struct {
	Message string `json:"message"`
}
