package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
	"shopledger/internal/repository/shop"
)

func (h *handlers) listExpenses(c *gin.Context) {
	expenses := h.deps.Shop.Expenses()
	c.JSON(http.StatusOK, gin.H{
		"expenses":    expenses,
		"monthToDate": ledger.MonthToDateExpenses(expenses, time.Now()),
	})
}

func (h *handlers) addExpense(c *gin.Context) {
	var draft shop.ExpenseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.deps.Shop.AddExpense(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) removeExpense(c *gin.Context) {
	err := h.deps.Shop.RemoveExpense(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) expenseCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.deps.ExpenseCategories})
}
