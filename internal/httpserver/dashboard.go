package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
)

const recentLimit = 5

type dashboardResponse struct {
	Aggregates      ledger.Aggregates `json:"aggregates"`
	RecentCustomers []domain.Customer `json:"recentCustomers"`
	RecentMemos     []domain.Memo     `json:"recentMemos"`
}

// dashboard returns the ledger-wide aggregates plus the newest customers and
// memos, newest first.
func (h *handlers) dashboard(c *gin.Context) {
	memos := h.deps.Shop.Memos()
	expenses := h.deps.Shop.Expenses()

	c.JSON(http.StatusOK, dashboardResponse{
		Aggregates:      ledger.DashboardAggregates(memos, expenses),
		RecentCustomers: recentCustomers(h.deps.Shop.Customers()),
		RecentMemos:     recentMemos(memos),
	})
}

func recentCustomers(list []domain.Customer) []domain.Customer {
	out := make([]domain.Customer, 0, recentLimit)
	for i := len(list) - 1; i >= 0 && len(out) < recentLimit; i-- {
		out = append(out, list[i])
	}
	return out
}

func recentMemos(list []domain.Memo) []domain.Memo {
	out := make([]domain.Memo, 0, recentLimit)
	for i := len(list) - 1; i >= 0 && len(out) < recentLimit; i-- {
		out = append(out, list[i])
	}
	return out
}
