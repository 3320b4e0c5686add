package ledger

import (
	"context"
	"time"
)

// ClientRepository is the persistence contract for clients. Read operations
// return clients with debts and payments eagerly attached so balance
// computation never triggers hidden I/O.
type ClientRepository interface {
	// Save creates or updates a client. On create the store assigns the id.
	Save(ctx context.Context, client *Client) error
	// FindByID returns one client with debts and payments attached,
	// or shared.ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Client, error)
	// FindAll returns every client with debts and payments attached,
	// ordered by name ascending, id ascending.
	FindAll(ctx context.Context) ([]Client, error)
	// DeleteCascade atomically removes the client together with all of its
	// debts and payments. Returns shared.ErrNotFound if the id is absent.
	DeleteCascade(ctx context.Context, id uint) error
	// Count returns the number of stored clients.
	Count(ctx context.Context) (int64, error)
}

// DebtRepository is the persistence contract for debts
type DebtRepository interface {
	Save(ctx context.Context, debt *Debt) error
	// FindAllWithClient returns all debts with their owning client attached,
	// ordered by date descending.
	FindAllWithClient(ctx context.Context) ([]Debt, error)
}

// PaymentRepository is the persistence contract for payments
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	// FindByDate returns the payments of one calendar day with their owning
	// client attached.
	FindByDate(ctx context.Context, day time.Time) ([]Payment, error)
}

// CashMovementRepository is the persistence contract for drawer withdrawals
type CashMovementRepository interface {
	Save(ctx context.Context, movement *CashMovement) error
	// FindByDate returns the withdrawals of one calendar day.
	FindByDate(ctx context.Context, day time.Time) ([]CashMovement, error)
	// Delete removes a withdrawal, or returns shared.ErrNotFound.
	Delete(ctx context.Context, id uint) error
}
