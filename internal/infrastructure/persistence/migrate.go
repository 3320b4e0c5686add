package persistence

import (
	"context"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Migrate ensures the schema for all ledger tables exists. It is idempotent
// and safe to run on every startup.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.ClientModel{},
		&models.DebtModel{},
		&models.PaymentModel{},
		&models.CashMovementModel{},
	)
}

// Seed inserts two illustrative clients with a couple of debts and payments
// so the application is non-empty on first launch. It only runs against a
// store with no clients at all and never duplicates.
func (d *Database) Seed(ctx context.Context) error {
	var count int64
	if err := d.DB.WithContext(ctx).Model(&models.ClientModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)

	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		juan := models.ClientModel{Name: "Juan Perez", Document: "DNI 12345678", Phone: "351-555-1234"}
		maria := models.ClientModel{Name: "Maria Gomez", Document: "DNI 23456789"}
		if err := tx.Create(&juan).Error; err != nil {
			return err
		}
		if err := tx.Create(&maria).Error; err != nil {
			return err
		}

		entries := []any{
			&models.DebtModel{ClientID: juan.ID, Date: today.AddDate(0, 0, -5), Amount: decimal.NewFromInt(5000), Description: "Jugadas semana 1"},
			&models.DebtModel{ClientID: juan.ID, Date: today.AddDate(0, 0, -2), Amount: decimal.NewFromInt(3000), Description: "Jugadas semana 2"},
			&models.PaymentModel{ClientID: juan.ID, Date: today.AddDate(0, 0, -1), Amount: decimal.NewFromInt(4000), Method: ledger.MethodCash},
			&models.DebtModel{ClientID: maria.ID, Date: today.AddDate(0, 0, -3), Amount: decimal.NewFromInt(2000), Description: "Jugadas"},
		}
		for _, entry := range entries {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
