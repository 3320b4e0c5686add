package persistence

import (
	"context"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDebtRepository implements ledger.DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// Save creates or updates a debt
func (r *GormDebtRepository) Save(ctx context.Context, debt *ledger.Debt) error {
	model := models.DebtModelFromDomain(debt)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	debt.ID = model.ID
	return nil
}

// FindAllWithClient returns all debts ordered by date descending with their
// owning client attached.
func (r *GormDebtRepository) FindAllWithClient(ctx context.Context) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("date DESC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}

	debts := make([]ledger.Debt, len(debtModels))
	for i, model := range debtModels {
		debts[i] = *model.ToDomain()
	}
	return debts, nil
}

// Ensure GormDebtRepository implements ledger.DebtRepository
var _ ledger.DebtRepository = (*GormDebtRepository)(nil)
