package domain

// Customer is a shop customer tracked by the ledger.
//
// Timestamps throughout the domain are Unix milliseconds. The persisted
// blobs predate this implementation and store epoch-ms numbers; keeping the
// representation keeps old snapshots loadable as-is.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt int64  `json:"createdAt"`
}
