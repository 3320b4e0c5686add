package ledger

import (
	"time"

	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CashMovement represents a manual withdrawal from the cash drawer.
// It is independent of any client's ledger.
type CashMovement struct {
	ID          uint
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// NewCashMovement creates a drawer withdrawal. Amount must be strictly positive.
func NewCashMovement(date time.Time, amount decimal.Decimal, description string) (*CashMovement, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if len(description) > MaxDescriptionLength {
		return nil, shared.NewValidationError("Description cannot exceed 240 characters")
	}
	return &CashMovement{
		Date:        date,
		Amount:      amount,
		Description: description,
	}, nil
}
