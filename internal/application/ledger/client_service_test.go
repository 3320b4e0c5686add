package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClientService_List_ComputesBalances(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	juan := createTestClient(1, "Juan Perez")
	juan.Debts = []ledger.Debt{
		{ID: 1, ClientID: 1, Date: time.Now(), Amount: amount("5000")},
		{ID: 2, ClientID: 1, Date: time.Now(), Amount: amount("3000")},
	}
	juan.Payments = []ledger.Payment{
		{ID: 1, ClientID: 1, Date: time.Now(), Amount: amount("4000"), Method: ledger.MethodCash},
	}
	maria := createTestClient(2, "Maria Gomez")

	mockRepo.On("FindAll", ctx).Return([]ledger.Client{*juan, *maria}, nil)

	result, err := service.List(ctx, "")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Juan Perez", result[0].Name)
	assert.True(t, result[0].Balance.Equal(amount("4000")))
	assert.True(t, result[1].Balance.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestClientService_List_FiltersBySearchText(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	juan, _ := ledger.NewClient("Juan Perez", "DNI 12345678", "351-555-0001", "")
	juan.ID = 1
	maria, _ := ledger.NewClient("Maria Gomez", "", "351-555-0002", "")
	maria.ID = 2

	mockRepo.On("FindAll", ctx).Return([]ledger.Client{*juan, *maria}, nil)

	result, err := service.List(ctx, "dni")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, uint(1), result[0].ID)
}

func TestClientService_Get_Success(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	client := createTestClient(7, "Juan Perez")
	client.Debts = []ledger.Debt{
		{ID: 1, ClientID: 7, Date: time.Now(), Amount: amount("2500"), Description: "Jugadas"},
	}

	mockRepo.On("FindByID", ctx, uint(7)).Return(client, nil)

	result, err := service.Get(ctx, 7)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(7), result.ID)
	assert.Len(t, result.Debts, 1)
	assert.True(t, result.Balance.Equal(amount("2500")))
}

func TestClientService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

	result, err := service.Get(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestClientService_Create_Success(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.AnythingOfType("*ledger.Client")).Run(func(args mock.Arguments) {
		args.Get(1).(*ledger.Client).ID = 3
	}).Return(nil)
	mockRepo.On("FindByID", ctx, uint(3)).Return(createTestClient(3, "Pedro Diaz"), nil)

	result, err := service.Create(ctx, CreateClientRequest{Name: "  Pedro Diaz  "})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "Pedro Diaz", result.Name)
	mockRepo.AssertExpectations(t)
}

func TestClientService_Create_RejectsBlankName(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)

	result, err := service.Create(context.Background(), CreateClientRequest{Name: "   "})

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestClientService_Update_Success(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	existing := createTestClient(5, "Juan Perez")
	updated := createTestClient(5, "Juan P. Perez")
	updated.Phone = "351-555-0009"

	mockRepo.On("FindByID", ctx, uint(5)).Return(existing, nil).Once()
	mockRepo.On("Save", ctx, mock.AnythingOfType("*ledger.Client")).Return(nil)
	mockRepo.On("FindByID", ctx, uint(5)).Return(updated, nil).Once()

	result, err := service.Update(ctx, 5, UpdateClientRequest{
		Name:  "Juan P. Perez",
		Phone: "351-555-0009",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Juan P. Perez", result.Name)
	assert.Equal(t, "351-555-0009", result.Phone)
	mockRepo.AssertExpectations(t)
}

func TestClientService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, uint(42)).Return(nil, shared.ErrNotFound)

	result, err := service.Update(ctx, 42, UpdateClientRequest{Name: "Someone"})

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestClientService_Update_RejectsInvalidFields(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, uint(5)).Return(createTestClient(5, "Juan Perez"), nil)

	result, err := service.Update(ctx, 5, UpdateClientRequest{Name: ""})

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestClientService_Delete_Cascades(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("DeleteCascade", ctx, uint(5)).Return(nil)

	err := service.Delete(ctx, 5)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := NewClientService(mockRepo)
	ctx := context.Background()

	mockRepo.On("DeleteCascade", ctx, uint(99)).Return(shared.ErrNotFound)

	err := service.Delete(ctx, 99)

	assert.Equal(t, shared.ErrNotFound, err)
}
