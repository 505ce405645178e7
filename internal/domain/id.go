package domain

import "github.com/google/uuid"

// NewID returns an opaque identifier unique within the running process.
// Not guaranteed stable across devices; the ledger only needs local identity.
func NewID() string {
	return uuid.NewString()
}
