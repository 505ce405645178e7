package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
	"shopledger/internal/reminder"
	"shopledger/internal/repository/shop"
)

// customerView is a customer decorated with the derived dues figures the
// customer list shows next to each entry.
type customerView struct {
	domain.Customer
	DueAmount   int64          `json:"dueAmount"`
	OverdueDays int            `json:"overdueDays"`
	Urgency     ledger.Urgency `json:"urgency"`
}

func (h *handlers) listCustomers(c *gin.Context) {
	customers := h.deps.Shop.Customers()
	memos := h.deps.Shop.Memos()
	now := time.Now()

	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	views := make([]customerView, 0, len(customers))
	for _, cust := range customers {
		if query != "" &&
			!strings.Contains(strings.ToLower(cust.Name), query) &&
			!strings.Contains(cust.Phone, query) {
			continue
		}
		days := ledger.OverdueAgeDays(cust.ID, memos, now)
		views = append(views, customerView{
			Customer:    cust,
			DueAmount:   ledger.CustomerDue(cust.ID, memos),
			OverdueDays: days,
			Urgency:     ledger.ClassifyUrgency(days),
		})
	}
	c.JSON(http.StatusOK, gin.H{"customers": views})
}

func (h *handlers) addCustomer(c *gin.Context) {
	var draft shop.CustomerDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.deps.Shop.AddCustomer(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateCustomer(c *gin.Context) {
	var patch shop.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, err := h.deps.Shop.UpdateCustomer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) removeCustomer(c *gin.Context) {
	if err := h.deps.Shop.RemoveCustomer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// customerReminder builds the dues-reminder message link for a customer.
// Rejected when nothing is due: there is no reminder to send.
func (h *handlers) customerReminder(c *gin.Context) {
	cust, err := h.deps.Shop.CustomerByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	due := ledger.CustomerDue(cust.ID, h.deps.Shop.Memos())
	if due <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer has no outstanding due"})
		return
	}
	link := h.deps.Reminder.PaymentLink(cust.Name, cust.Phone, due)
	c.JSON(http.StatusOK, reminderResponse{DueAmount: due, Link: link})
}

type reminderResponse struct {
	DueAmount int64         `json:"dueAmount"`
	Link      reminder.Link `json:"link"`
}
