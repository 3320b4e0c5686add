package ledger

import (
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// CreateClientRequest carries the fields for creating a client
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateClientRequest carries the fields for updating a client
type UpdateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// AddDebtRequest carries the fields for appending a debt to a client
type AddDebtRequest struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// AddPaymentRequest carries the fields for appending a payment to a client
type AddPaymentRequest struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes"`
}

// AddCashMovementRequest carries the fields for recording a drawer withdrawal
type AddCashMovementRequest struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ClientSummaryResponse is the directory row: client fields plus the
// derived balance, recomputed on every read.
type ClientSummaryResponse struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Document string          `json:"document,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Address  string          `json:"address,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
}

// ClientDetailResponse is the selection view: the summary plus the client's
// debts and payments, both ordered by date descending.
type ClientDetailResponse struct {
	ClientSummaryResponse
	Debts    []DebtResponse    `json:"debts"`
	Payments []PaymentResponse `json:"payments"`
}

// DebtResponse represents a debt in API responses
type DebtResponse struct {
	ID          uint            `json:"id"`
	ClientID    uint            `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID         uint            `json:"id"`
	ClientID   uint            `json:"client_id"`
	ClientName string          `json:"client_name,omitempty"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// CashMovementResponse represents a drawer withdrawal in API responses
type CashMovementResponse struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ReconciliationResponse is the daily drawer view: every payment of the day
// for display, the withdrawals, and the cash total that counts only
// cash-method payments.
type ReconciliationResponse struct {
	Date        string                 `json:"date"`
	Payments    []PaymentResponse      `json:"payments"`
	Withdrawals []CashMovementResponse `json:"withdrawals"`
	CashTotal   decimal.Decimal        `json:"cash_total"`
}

// ClientBalanceResponse is one bar of the balance-by-client chart
type ClientBalanceResponse struct {
	ClientID uint            `json:"client_id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToClientSummaryResponse converts a domain client to its directory row
func ToClientSummaryResponse(c *ledger.Client) ClientSummaryResponse {
	return ClientSummaryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Phone:    c.Phone,
		Address:  c.Address,
		Balance:  c.Balance(),
	}
}

// ToClientDetailResponse converts a domain client to its selection view
func ToClientDetailResponse(c *ledger.Client) ClientDetailResponse {
	detail := ClientDetailResponse{
		ClientSummaryResponse: ToClientSummaryResponse(c),
		Debts:                 make([]DebtResponse, len(c.Debts)),
		Payments:              make([]PaymentResponse, len(c.Payments)),
	}
	for i := range c.Debts {
		detail.Debts[i] = ToDebtResponse(&c.Debts[i])
	}
	for i := range c.Payments {
		detail.Payments[i] = ToPaymentResponse(&c.Payments[i])
	}
	return detail
}

// ToDebtResponse converts a domain debt to its API representation
func ToDebtResponse(d *ledger.Debt) DebtResponse {
	resp := DebtResponse{
		ID:          d.ID,
		ClientID:    d.ClientID,
		Date:        d.Date,
		Amount:      d.Amount,
		Description: d.Description,
	}
	if d.Client != nil {
		resp.ClientName = d.Client.Name
	}
	return resp
}

// ToPaymentResponse converts a domain payment to its API representation
func ToPaymentResponse(p *ledger.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:       p.ID,
		ClientID: p.ClientID,
		Date:     p.Date,
		Amount:   p.Amount,
		Method:   p.Method,
		Notes:    p.Notes,
	}
	if p.Client != nil {
		resp.ClientName = p.Client.Name
	}
	return resp
}

// ToCashMovementResponse converts a domain cash movement to its API representation
func ToCashMovementResponse(m *ledger.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Amount:      m.Amount,
		Description: m.Description,
	}
}
