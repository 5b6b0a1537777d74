package models

// SaleRecord represents one completed payment in the sales history.
// Records are immutable once written and are never updated or deleted.
type SaleRecord struct {
	// Date is the invoice date as an ISO-8601 calendar date (YYYY-MM-DD).
	Date string `json:"date"`

	// Total is the grand total at the time of payment. Always > 0 for new records.
	Total float64 `json:"total"`

	// CreatedAt is the ISO-8601 timestamp of when the record was written.
	CreatedAt string `json:"createdAt"`
}

// MonthlyTotal is the sum of sale totals for one calendar month.
type MonthlyTotal struct {
	// Month is the YYYY-MM month key.
	Month string `json:"month"`

	// Total is the sum of SaleRecord.Total for the month.
	Total float64 `json:"total"`
}
