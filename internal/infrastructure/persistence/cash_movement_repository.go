package persistence

import (
	"context"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/quiniela/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCashMovementRepository implements ledger.CashMovementRepository using GORM
type GormCashMovementRepository struct {
	db *gorm.DB
}

// NewGormCashMovementRepository creates a new GormCashMovementRepository
func NewGormCashMovementRepository(db *gorm.DB) *GormCashMovementRepository {
	return &GormCashMovementRepository{db: db}
}

// Save creates or updates a drawer withdrawal
func (r *GormCashMovementRepository) Save(ctx context.Context, movement *ledger.CashMovement) error {
	model := models.CashMovementModelFromDomain(movement)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	movement.ID = model.ID
	return nil
}

// FindByDate returns the withdrawals of one calendar day
func (r *GormCashMovementRepository) FindByDate(ctx context.Context, day time.Time) ([]ledger.CashMovement, error) {
	start, end := dayRange(day)

	var movementModels []models.CashMovementModel
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("id ASC").
		Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]ledger.CashMovement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}

// Delete removes a withdrawal
func (r *GormCashMovementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CashMovementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCashMovementRepository implements ledger.CashMovementRepository
var _ ledger.CashMovementRepository = (*GormCashMovementRepository)(nil)
