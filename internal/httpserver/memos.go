package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopledger/internal/domain"
	"shopledger/internal/repository/shop"
)

func (h *handlers) listMemos(c *gin.Context) {
	memos := h.deps.Shop.Memos()
	if customerID := c.Query("customerId"); customerID != "" {
		filtered := memos[:0]
		for _, m := range memos {
			if m.CustomerID == customerID {
				filtered = append(filtered, m)
			}
		}
		memos = filtered
	}
	c.JSON(http.StatusOK, gin.H{"memos": memos})
}

// getMemo returns a memo together with its customer. The reference is weak:
// a memo whose customer was deleted still renders, just without one.
func (h *handlers) getMemo(c *gin.Context) {
	memo, err := h.deps.Shop.MemoByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	var customer *domain.Customer
	if cust, err := h.deps.Shop.CustomerByID(memo.CustomerID); err == nil {
		customer = &cust
	}
	c.JSON(http.StatusOK, gin.H{"memo": memo, "customer": customer})
}

func (h *handlers) addMemo(c *gin.Context) {
	var draft shop.MemoDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.deps.Shop.AddMemo(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// removeMemo deletes by id. Removal is a no-op when the memo is already
// gone, so a repeat delete answers the same as the first.
func (h *handlers) removeMemo(c *gin.Context) {
	err := h.deps.Shop.RemoveMemo(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
