package persistence

import (
	"context"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements ledger.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	payment.ID = model.ID
	return nil
}

// FindByDate returns the payments of one calendar day with their owning
// client attached, regardless of method.
func (r *GormPaymentRepository) FindByDate(ctx context.Context, day time.Time) ([]ledger.Payment, error) {
	start, end := dayRange(day)

	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("date >= ? AND date < ?", start, end).
		Order("id ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]ledger.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// dayRange returns the [midnight, next midnight) bounds of the day in its
// own location, mirroring a calendar-date comparison.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// Ensure GormPaymentRepository implements ledger.PaymentRepository
var _ ledger.PaymentRepository = (*GormPaymentRepository)(nil)
