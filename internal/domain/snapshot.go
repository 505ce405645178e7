package domain

// Snapshot is the unit of persistence: the three collections are always
// loaded and saved together, never piecemeal.
type Snapshot struct {
	Customers []Customer
	Memos     []Memo
	Expenses  []Expense
}
