package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain"
	"shopledger/internal/kvstore"
	"shopledger/internal/reminder"
	"shopledger/internal/repository/shop"
)

// Deps carries everything the routes need.
type Deps struct {
	Shop              *shop.Repository
	Store             kvstore.Store
	Reminder          *reminder.Builder
	ExpenseCategories []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	// The UI is served separately; allow browser clients from anywhere.
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	h := &handlers{deps: deps}

	api := router.Group("/api")
	{
		api.GET("/customers", h.listCustomers)
		api.POST("/customers", h.addCustomer)
		api.PATCH("/customers/:id", h.updateCustomer)
		api.DELETE("/customers/:id", h.removeCustomer)
		api.GET("/customers/:id/reminder", h.customerReminder)

		api.GET("/memos", h.listMemos)
		api.GET("/memos/:id", h.getMemo)
		api.POST("/memos", h.addMemo)
		api.DELETE("/memos/:id", h.removeMemo)

		api.GET("/expenses", h.listExpenses)
		api.POST("/expenses", h.addExpense)
		api.DELETE("/expenses/:id", h.removeExpense)
		api.GET("/expenses/categories", h.expenseCategories)

		api.GET("/dashboard", h.dashboard)
	}

	return router
}

type handlers struct {
	deps Deps
}

// writeError maps domain errors onto HTTP statuses: validation rejections
// are the caller's fault, stale ids are not found, everything else is a
// server problem.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, shop.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ledger not loaded yet"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
