// Package shop holds the in-memory collections behind the ledger: customers,
// memos and expenses. The repository owns all mutation; everything else reads
// snapshots. After the initial load every successful mutation is persisted as
// a full three-collection snapshot.
package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
)

// ErrNotLoaded is returned when a mutation is attempted before Load has
// completed. Persisting before the initial load would overwrite stored data
// with the empty boot state.
var ErrNotLoaded = errors.New("repository not loaded")

// Persister loads and saves full snapshots. Implemented by persist.Bridge.
type Persister interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Repository is the single owner of the three mutable collections.
//
// The original tool was strictly single threaded; an HTTP front end is not,
// so a mutex serializes access here.
type Repository struct {
	mu        sync.Mutex
	persister Persister
	logger    *log.Logger
	loaded    bool

	customers []domain.Customer
	memos     []domain.Memo
	expenses  []domain.Expense
}

// New returns an unloaded Repository. Call Load before mutating.
func New(p Persister, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Repository{persister: p, logger: logger}
}

// Load populates the collections from the persister and unlocks mutation.
func (r *Repository) Load(ctx context.Context) error {
	snap, err := r.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = snap.Customers
	r.memos = snap.Memos
	r.expenses = snap.Expenses
	r.loaded = true
	r.logger.Printf("loaded %d customers, %d memos, %d expenses", len(r.customers), len(r.memos), len(r.expenses))
	return nil
}

// CustomerDraft carries the fields a caller supplies when adding a customer.
type CustomerDraft struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerPatch updates individual customer fields. Nil means leave as is;
// id and createdAt can never change.
type CustomerPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ItemDraft is one line of a memo draft.
type ItemDraft struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// MemoDraft is the input for creating a memo. Totals are computed here, not
// supplied by the caller.
type MemoDraft struct {
	CustomerID string      `json:"customerId"`
	Items      []ItemDraft `json:"items"`
	PaidAmount int64       `json:"paidAmount"`
}

// ExpenseDraft is the input for recording an expense.
type ExpenseDraft struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note"`
}

// AddCustomer validates the draft and appends a new customer.
func (r *Repository) AddCustomer(ctx context.Context, draft CustomerDraft) (domain.Customer, error) {
	name := strings.TrimSpace(draft.Name)
	phone := strings.TrimSpace(draft.Phone)
	if name == "" {
		return domain.Customer{}, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if phone == "" {
		return domain.Customer{}, fmt.Errorf("%w: phone required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return domain.Customer{}, ErrNotLoaded
	}

	c := domain.Customer{
		ID:        domain.NewID(),
		Name:      name,
		Phone:     phone,
		Address:   strings.TrimSpace(draft.Address),
		CreatedAt: time.Now().UnixMilli(),
	}
	r.customers = append(r.customers, c)
	if err := r.persistLocked(ctx); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// UpdateCustomer merges the patch into an existing customer. Only name,
// phone and address are touched.
func (r *Repository) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (domain.Customer, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Customer{}, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if patch.Phone != nil && strings.TrimSpace(*patch.Phone) == "" {
		return domain.Customer{}, fmt.Errorf("%w: phone required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return domain.Customer{}, ErrNotLoaded
	}

	for i := range r.customers {
		if r.customers[i].ID != id {
			continue
		}
		if patch.Name != nil {
			r.customers[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Phone != nil {
			r.customers[i].Phone = strings.TrimSpace(*patch.Phone)
		}
		if patch.Address != nil {
			r.customers[i].Address = strings.TrimSpace(*patch.Address)
		}
		if err := r.persistLocked(ctx); err != nil {
			return domain.Customer{}, err
		}
		return r.customers[i], nil
	}
	return domain.Customer{}, domain.ErrNotFound
}

// RemoveCustomer deletes the customer. Memos referencing it are left alone;
// they keep a dangling customerId that readers must tolerate.
func (r *Repository) RemoveCustomer(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return ErrNotLoaded
	}

	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return domain.ErrNotFound
}

// AddMemo validates the draft, freezes the computed totals into the record
// and appends it. Memos are immutable from here on: there is no update path,
// only RemoveMemo.
func (r *Repository) AddMemo(ctx context.Context, draft MemoDraft) (domain.Memo, error) {
	if strings.TrimSpace(draft.CustomerID) == "" {
		return domain.Memo{}, fmt.Errorf("%w: customer required", domain.ErrInvalidInput)
	}
	if len(draft.Items) == 0 {
		return domain.Memo{}, fmt.Errorf("%w: at least one item required", domain.ErrInvalidInput)
	}
	if draft.PaidAmount < 0 {
		return domain.Memo{}, fmt.Errorf("%w: paid amount cannot be negative", domain.ErrInvalidInput)
	}

	items := make([]domain.ServiceItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		total, err := ledger.ItemTotal(it.UnitPrice, it.Quantity)
		if err != nil {
			return domain.Memo{}, fmt.Errorf("item %q: %w", it.Name, err)
		}
		items = append(items, domain.ServiceItem{
			ID:        domain.NewID(),
			Name:      strings.TrimSpace(it.Name),
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Total:     total,
		})
	}
	totalBill, dueAmount := ledger.MemoTotals(items, draft.PaidAmount)

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return domain.Memo{}, ErrNotLoaded
	}

	now := time.Now()
	m := domain.Memo{
		ID:         domain.NewID(),
		CustomerID: draft.CustomerID,
		Items:      items,
		TotalBill:  totalBill,
		PaidAmount: draft.PaidAmount,
		DueAmount:  dueAmount,
		Date:       now.UnixMilli(),
		MemoNumber: domain.NewMemoNumber(now),
	}
	r.memos = append(r.memos, m)
	if err := r.persistLocked(ctx); err != nil {
		return domain.Memo{}, err
	}
	return m, nil
}

// RemoveMemo deletes a memo by id.
func (r *Repository) RemoveMemo(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return ErrNotLoaded
	}

	for i := range r.memos {
		if r.memos[i].ID == id {
			r.memos = append(r.memos[:i], r.memos[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return domain.ErrNotFound
}

// AddExpense validates the draft and appends a new expense.
func (r *Repository) AddExpense(ctx context.Context, draft ExpenseDraft) (domain.Expense, error) {
	if draft.Amount <= 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return domain.Expense{}, ErrNotLoaded
	}

	e := domain.Expense{
		ID:       domain.NewID(),
		Category: strings.TrimSpace(draft.Category),
		Amount:   draft.Amount,
		Date:     time.Now().UnixMilli(),
		Note:     strings.TrimSpace(draft.Note),
	}
	r.expenses = append(r.expenses, e)
	if err := r.persistLocked(ctx); err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

// RemoveExpense deletes an expense by id.
func (r *Repository) RemoveExpense(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return ErrNotLoaded
	}

	for i := range r.expenses {
		if r.expenses[i].ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return domain.ErrNotFound
}

// Customers returns a copy of the customer collection.
func (r *Repository) Customers() []domain.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// Memos returns a copy of the memo collection.
func (r *Repository) Memos() []domain.Memo {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Memo, len(r.memos))
	copy(out, r.memos)
	return out
}

// Expenses returns a copy of the expense collection.
func (r *Repository) Expenses() []domain.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Expense, len(r.expenses))
	copy(out, r.expenses)
	return out
}

// CustomerByID fetches one customer.
func (r *Repository) CustomerByID(id string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, domain.ErrNotFound
}

// MemoByID fetches one memo.
func (r *Repository) MemoByID(id string) (domain.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.memos {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Memo{}, domain.ErrNotFound
}

// persistLocked saves the current state as one snapshot. Callers hold the
// mutex. A save failure is reported but the in-memory mutation stands; the
// collections remain the source of truth and the next successful save writes
// everything again.
func (r *Repository) persistLocked(ctx context.Context) error {
	snap := domain.Snapshot{
		Customers: r.customers,
		Memos:     r.memos,
		Expenses:  r.expenses,
	}
	if err := r.persister.Save(ctx, snap); err != nil {
		r.logger.Printf("persist snapshot: %v", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
