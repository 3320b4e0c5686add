package ledger

import (
	"context"

	"github.com/quiniela/backend/internal/domain/ledger"
)

// ReportService produces read-only summaries over the whole ledger.
type ReportService struct {
	clientRepo ledger.ClientRepository
}

// NewReportService creates a new ReportService
func NewReportService(clientRepo ledger.ClientRepository) *ReportService {
	return &ReportService{clientRepo: clientRepo}
}

// ClientBalances returns every client's outstanding balance, sorted by name
func (s *ReportService) ClientBalances(ctx context.Context) ([]ClientBalanceResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	balances := ledger.Balances(clients)
	responses := make([]ClientBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = ClientBalanceResponse{
			ClientID: b.ClientID,
			Name:     b.Name,
			Balance:  b.Balance,
		}
	}
	return responses, nil
}
