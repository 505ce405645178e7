package domain

// Expense is a recorded business cost. Category comes from a fixed set
// supplied by configuration; the ledger itself does not interpret it.
type Expense struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Date     int64  `json:"date"`
	Note     string `json:"note"`
}
