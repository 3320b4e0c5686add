package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/quiniela/backend/internal/application/ledger"
	"github.com/quiniela/backend/internal/interfaces/http/middleware"
)

// ClientHandler handles client directory and ledger entry API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *ledgerapp.ClientService
	entryService  *ledgerapp.EntryService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *ledgerapp.ClientService, entryService *ledgerapp.EntryService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		entryService:  entryService,
	}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")

	clients := ledger.Group("/clients")
	clients.GET("", h.List)
	clients.POST("", h.Create)
	clients.GET("/:id", h.Get)
	clients.PUT("/:id", h.Update)
	clients.DELETE("/:id", h.Delete)
	clients.POST("/:id/debts", h.AddDebt)
	clients.POST("/:id/payments", h.AddPayment)

	ledger.GET("/debts", h.ListDebts)
}

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Document string `json:"document" binding:"max=32"`
	Phone    string `json:"phone" binding:"max=32"`
	Address  string `json:"address" binding:"max=200"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Document string `json:"document" binding:"max=32"`
	Phone    string `json:"phone" binding:"max=32"`
	Address  string `json:"address" binding:"max=200"`
}

// AddDebtRequest represents a request to record a debt against a client
type AddDebtRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=240"`
}

// AddPaymentRequest represents a request to record a payment from a client
type AddPaymentRequest struct {
	Date   time.Time       `json:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"max=64"`
	Notes  string          `json:"notes" binding:"max=240"`
}

// List returns the client directory, optionally filtered by the search
// query parameter.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, clients)
}

// Get returns one client with debts and payments attached
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, client)
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), ledgerapp.CreateClientRequest{
		Name:     req.Name,
		Document: req.Document,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, client)
}

// Update updates a client's fields
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, ledgerapp.UpdateClientRequest{
		Name:     req.Name,
		Document: req.Document,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, client)
}

// Delete removes a client together with all of its debts and payments
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// AddDebt records a debt against a client and returns the updated client
func (h *ClientHandler) AddDebt(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req AddDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	client, err := h.entryService.AddDebt(c.Request.Context(), id, ledgerapp.AddDebtRequest{
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, client)
}

// AddPayment records a payment from a client and returns the updated client
func (h *ClientHandler) AddPayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	client, err := h.entryService.AddPayment(c.Request.Context(), id, ledgerapp.AddPaymentRequest{
		Date:   req.Date,
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, client)
}

// ListDebts returns every debt across all clients, newest first
func (h *ClientHandler) ListDebts(c *gin.Context) {
	debts, err := h.entryService.ListDebts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debts)
}

// parseID parses the :id path parameter, responding 400 on bad input
func (h *ClientHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
