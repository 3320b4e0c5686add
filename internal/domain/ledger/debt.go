package ledger

import (
	"time"

	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the free-text description of debts and cash movements
const MaxDescriptionLength = 240

// Debt represents an amount owed by a client as of a date
type Debt struct {
	ID          uint
	ClientID    uint
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Client      *Client
}

// NewDebt creates a debt owned by the given client. Amount must be strictly positive.
func NewDebt(clientID uint, date time.Time, amount decimal.Decimal, description string) (*Debt, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if len(description) > MaxDescriptionLength {
		return nil, shared.NewValidationError("Description cannot exceed 240 characters")
	}
	return &Debt{
		ClientID:    clientID,
		Date:        date,
		Amount:      amount,
		Description: description,
	}, nil
}

// validateAmount rejects zero and negative monetary amounts
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("Amount must be greater than zero")
	}
	return nil
}
