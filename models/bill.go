package models

// ============================================================================
// BILL MODEL
// A bill is an uploaded source document (PDF/spreadsheet) parsed server-side
// into transactions.
// ============================================================================

type Bill struct {
	ID          int    `json:"id"`
	FileName    string `json:"file_name"`
	UploadDate  string `json:"upload_date"`
	TotalAmount string `json:"total_amount"`
	DueDate     string `json:"due_date"`
}

// BillDetail is a Bill expanded with the sub-transactions parsed from it.
type BillDetail struct {
	Bill
	Transactions []SubTransaction `json:"transactions"`
}
