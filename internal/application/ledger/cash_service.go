package ledger

import (
	"context"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
)

// CashService records and reverses standalone cash drawer withdrawals and
// computes the daily reconciliation.
type CashService struct {
	paymentRepo  ledger.PaymentRepository
	movementRepo ledger.CashMovementRepository
}

// NewCashService creates a new CashService
func NewCashService(paymentRepo ledger.PaymentRepository, movementRepo ledger.CashMovementRepository) *CashService {
	return &CashService{paymentRepo: paymentRepo, movementRepo: movementRepo}
}

// AddWithdrawal validates and records a cash withdrawal
func (s *CashService) AddWithdrawal(ctx context.Context, req AddCashMovementRequest) (*CashMovementResponse, error) {
	movement, err := ledger.NewCashMovement(req.Date, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.movementRepo.Save(ctx, movement); err != nil {
		return nil, err
	}
	resp := ToCashMovementResponse(movement)
	return &resp, nil
}

// DeleteWithdrawal removes a recorded withdrawal so the day's total no
// longer reflects it.
func (s *CashService) DeleteWithdrawal(ctx context.Context, id uint) error {
	return s.movementRepo.Delete(ctx, id)
}

// ListWithdrawals returns the withdrawals recorded on one calendar day
func (s *CashService) ListWithdrawals(ctx context.Context, day time.Time) ([]CashMovementResponse, error) {
	withdrawals, err := s.movementRepo.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]CashMovementResponse, len(withdrawals))
	for i := range withdrawals {
		responses[i] = ToCashMovementResponse(&withdrawals[i])
	}
	return responses, nil
}

// Reconcile computes the cash drawer position for a calendar day: the sum
// of that day's cash payments minus that day's withdrawals. Payments made
// by any other method are excluded.
func (s *CashService) Reconcile(ctx context.Context, day time.Time) (*ReconciliationResponse, error) {
	payments, err := s.paymentRepo.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.movementRepo.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	resp := ReconciliationResponse{
		Date:        day.Format("2006-01-02"),
		Payments:    make([]PaymentResponse, len(payments)),
		Withdrawals: make([]CashMovementResponse, len(withdrawals)),
		CashTotal:   ledger.DailyCashTotal(payments, withdrawals),
	}
	for i := range payments {
		resp.Payments[i] = ToPaymentResponse(&payments[i])
	}
	for i := range withdrawals {
		resp.Withdrawals[i] = ToCashMovementResponse(&withdrawals[i])
	}
	return &resp, nil
}
