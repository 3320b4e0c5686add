package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/quiniela/backend/internal/application/ledger"
	"github.com/quiniela/backend/internal/interfaces/http/middleware"
)

// CashHandler handles cash drawer API endpoints: withdrawals and the daily
// reconciliation.
type CashHandler struct {
	BaseHandler
	cashService *ledgerapp.CashService
}

// NewCashHandler creates a new CashHandler
func NewCashHandler(cashService *ledgerapp.CashService) *CashHandler {
	return &CashHandler{cashService: cashService}
}

// RegisterRoutes registers cash drawer routes
func (h *CashHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	ledger.GET("/cash-movements", h.ListWithdrawals)
	ledger.POST("/cash-movements", h.AddWithdrawal)
	ledger.DELETE("/cash-movements/:id", h.DeleteWithdrawal)
	ledger.GET("/reconciliation", h.Reconcile)
}

// AddCashMovementRequest represents a request to record a drawer withdrawal
type AddCashMovementRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=240"`
}

// AddWithdrawal records a cash withdrawal
func (h *CashHandler) AddWithdrawal(c *gin.Context) {
	var req AddCashMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	movement, err := h.cashService.AddWithdrawal(c.Request.Context(), ledgerapp.AddCashMovementRequest{
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, movement)
}

// DeleteWithdrawal removes a recorded withdrawal
func (h *CashHandler) DeleteWithdrawal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.cashService.DeleteWithdrawal(c.Request.Context(), uint(id)); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListWithdrawals returns the withdrawals of one calendar day. The day
// comes from the date query parameter (2006-01-02) and defaults to today.
func (h *CashHandler) ListWithdrawals(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	withdrawals, err := h.cashService.ListWithdrawals(c.Request.Context(), day)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, withdrawals)
}

// Reconcile returns the cash drawer position for one calendar day. The day
// comes from the date query parameter (2006-01-02) and defaults to today.
func (h *CashHandler) Reconcile(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	result, err := h.cashService.Reconcile(c.Request.Context(), day)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// parseDay parses the date query parameter, responding 400 on bad input
func (h *CashHandler) parseDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		h.BadRequest(c, "Invalid date, expected format 2006-01-02")
		return time.Time{}, false
	}
	return day, true
}
