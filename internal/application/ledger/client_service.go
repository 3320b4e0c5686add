package ledger

import (
	"context"

	"github.com/quiniela/backend/internal/domain/ledger"
)

// ClientService drives the client directory and the client lifecycle:
// validated creation, updates, cascade deletion and search. Every mutating
// operation returns the affected client reloaded from the store, so callers
// can keep their selection anchored by id across reloads.
type ClientService struct {
	clientRepo ledger.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo ledger.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns the directory rows matching the search text, sorted by name.
// Empty text lists everyone. Balances are recomputed from the eagerly
// loaded debts and payments on every call.
func (s *ClientService) List(ctx context.Context, search string) ([]ClientSummaryResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := ledger.Search(clients, search)
	responses := make([]ClientSummaryResponse, len(matched))
	for i := range matched {
		responses[i] = ToClientSummaryResponse(&matched[i])
	}
	return responses, nil
}

// Get returns one client's selection view with debts and payments attached
func (s *ClientService) Get(ctx context.Context, id uint) (*ClientDetailResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := ToClientDetailResponse(client)
	return &detail, nil
}

// Create validates and stores a new client. The client starts with no debts
// and no payments.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientDetailResponse, error) {
	client, err := ledger.NewClient(req.Name, req.Document, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	return s.Get(ctx, client.ID)
}

// Update validates and stores changed client fields
func (s *ClientService) Update(ctx context.Context, id uint, req UpdateClientRequest) (*ClientDetailResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Name, req.Document, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the client together with every debt and payment it owns,
// atomically.
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	return s.clientRepo.DeleteCascade(ctx, id)
}
