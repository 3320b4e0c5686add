package ledger

import (
	"context"

	"github.com/quiniela/backend/internal/domain/ledger"
)

// EntryService records debts and payments against existing clients and
// lists the global debt history.
type EntryService struct {
	clientRepo  ledger.ClientRepository
	debtRepo    ledger.DebtRepository
	paymentRepo ledger.PaymentRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(
	clientRepo ledger.ClientRepository,
	debtRepo ledger.DebtRepository,
	paymentRepo ledger.PaymentRepository,
) *EntryService {
	return &EntryService{
		clientRepo:  clientRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
	}
}

// AddDebt validates and records a debt for the client and returns the
// client reloaded with the new entry included.
func (s *EntryService) AddDebt(ctx context.Context, clientID uint, req AddDebtRequest) (*ClientDetailResponse, error) {
	// Reject entries against clients that no longer exist before touching
	// the debts table.
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	debt, err := ledger.NewDebt(clientID, req.Date, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return s.reload(ctx, clientID)
}

// AddPayment validates and records a payment for the client and returns the
// client reloaded with the new entry included.
func (s *EntryService) AddPayment(ctx context.Context, clientID uint, req AddPaymentRequest) (*ClientDetailResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	payment, err := ledger.NewPayment(clientID, req.Date, req.Amount, req.Method, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return s.reload(ctx, clientID)
}

// ListDebts returns every debt across all clients, newest first, with the
// owning client's name attached.
func (s *EntryService) ListDebts(ctx context.Context) ([]DebtResponse, error) {
	debts, err := s.debtRepo.FindAllWithClient(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DebtResponse, len(debts))
	for i := range debts {
		responses[i] = ToDebtResponse(&debts[i])
	}
	return responses, nil
}

func (s *EntryService) reload(ctx context.Context, clientID uint) (*ClientDetailResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	detail := ToClientDetailResponse(client)
	return &detail, nil
}
