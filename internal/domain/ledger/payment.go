package ledger

import (
	"time"

	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MethodCash is the canonical payment method counted by the daily cash
// reconciliation. Matching is an exact comparison, not a substring match.
const MethodCash = "cash"

// MaxMethodLength bounds the free-text payment method label
const MaxMethodLength = 64

// Payment represents an amount paid by a client, reducing its balance
type Payment struct {
	ID       uint
	ClientID uint
	Date     time.Time
	Amount   decimal.Decimal
	Method   string
	Notes    string
	Client   *Client
}

// NewPayment creates a payment owned by the given client. Amount must be strictly positive.
func NewPayment(clientID uint, date time.Time, amount decimal.Decimal, method, notes string) (*Payment, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if len(method) > MaxMethodLength {
		return nil, shared.NewValidationError("Method cannot exceed 64 characters")
	}
	if len(notes) > MaxDescriptionLength {
		return nil, shared.NewValidationError("Notes cannot exceed 240 characters")
	}
	return &Payment{
		ClientID: clientID,
		Date:     date,
		Amount:   amount,
		Method:   method,
		Notes:    notes,
	}, nil
}

// IsCash reports whether this payment counts toward the daily cash total
func (p *Payment) IsCash() bool {
	return p.Method == MethodCash
}
