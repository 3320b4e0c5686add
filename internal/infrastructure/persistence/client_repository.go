package persistence

import (
	"context"
	"errors"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/quiniela/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements ledger.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save creates or updates a client. The store assigns the id on creation
// and it is copied back onto the domain entity.
func (r *GormClientRepository) Save(ctx context.Context, client *ledger.Client) error {
	model := models.ClientModelFromDomain(client)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	client.ID = model.ID
	return nil
}

// FindByID finds a client by id with debts and payments eagerly attached,
// both ordered by date descending for display.
func (r *GormClientRepository) FindByID(ctx context.Context, id uint) (*ledger.Client, error) {
	var model models.ClientModel
	if err := r.eager(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every client with debts and payments eagerly attached,
// ordered by name ascending with id as tiebreak.
func (r *GormClientRepository) FindAll(ctx context.Context) ([]ledger.Client, error) {
	var clientModels []models.ClientModel
	if err := r.eager(r.db.WithContext(ctx)).
		Order("name ASC, id ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]ledger.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// DeleteCascade removes the client and all of its debts and payments in one
// transaction, so no orphan is ever observable.
func (r *GormClientRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.DebtModel{}, "client_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PaymentModel{}, "client_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ClientModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts stored clients
func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// eager attaches the debts and payments preloads used by every read path
func (r *GormClientRepository) eager(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Debts", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		})
}

// Ensure GormClientRepository implements ledger.ClientRepository
var _ ledger.ClientRepository = (*GormClientRepository)(nil)
