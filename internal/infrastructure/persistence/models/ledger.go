package models

import (
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(120);not null;index"`
	Document string `gorm:"type:varchar(32)"`
	Phone    string `gorm:"type:varchar(32)"`
	Address  string `gorm:"type:varchar(200)"`

	Debts    []DebtModel    `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Payments []PaymentModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// DebtModel is the persistence model for the Debt domain entity.
type DebtModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	ClientID    uint            `gorm:"not null;index"`
	Date        time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(240)"`

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for GORM
func (DebtModel) TableName() string {
	return "debts"
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	ID       uint            `gorm:"primaryKey;autoIncrement"`
	ClientID uint            `gorm:"not null;index"`
	Date     time.Time       `gorm:"not null;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method   string          `gorm:"type:varchar(64)"`
	Notes    string          `gorm:"type:varchar(240)"`

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// CashMovementModel is the persistence model for the CashMovement domain entity.
// It has no foreign keys: drawer withdrawals are independent of clients.
type CashMovementModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(240)"`
}

// TableName returns the table name for GORM
func (CashMovementModel) TableName() string {
	return "cash_movements"
}

// ToDomain converts the persistence model to a domain Client entity,
// including its attached debts and payments.
func (m *ClientModel) ToDomain() *ledger.Client {
	c := &ledger.Client{
		ID:       m.ID,
		Name:     m.Name,
		Document: m.Document,
		Phone:    m.Phone,
		Address:  m.Address,
		Debts:    make([]ledger.Debt, len(m.Debts)),
		Payments: make([]ledger.Payment, len(m.Payments)),
	}
	for i, d := range m.Debts {
		c.Debts[i] = *d.ToDomain()
	}
	for i, p := range m.Payments {
		c.Payments[i] = *p.ToDomain()
	}
	return c
}

// ClientModelFromDomain populates the persistence model from a domain Client.
// Debts and payments are persisted through their own repositories and are
// intentionally not written here.
func ClientModelFromDomain(c *ledger.Client) *ClientModel {
	return &ClientModel{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Phone:    c.Phone,
		Address:  c.Address,
	}
}

// ToDomain converts the persistence model to a domain Debt entity.
func (m *DebtModel) ToDomain() *ledger.Debt {
	d := &ledger.Debt{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Date:        m.Date,
		Amount:      m.Amount,
		Description: m.Description,
	}
	if m.Client != nil {
		d.Client = m.Client.ToDomain()
	}
	return d
}

// DebtModelFromDomain populates the persistence model from a domain Debt.
func DebtModelFromDomain(d *ledger.Debt) *DebtModel {
	return &DebtModel{
		ID:          d.ID,
		ClientID:    d.ClientID,
		Date:        d.Date,
		Amount:      d.Amount,
		Description: d.Description,
	}
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	p := &ledger.Payment{
		ID:       m.ID,
		ClientID: m.ClientID,
		Date:     m.Date,
		Amount:   m.Amount,
		Method:   m.Method,
		Notes:    m.Notes,
	}
	if m.Client != nil {
		p.Client = m.Client.ToDomain()
	}
	return p
}

// PaymentModelFromDomain populates the persistence model from a domain Payment.
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	return &PaymentModel{
		ID:       p.ID,
		ClientID: p.ClientID,
		Date:     p.Date,
		Amount:   p.Amount,
		Method:   p.Method,
		Notes:    p.Notes,
	}
}

// ToDomain converts the persistence model to a domain CashMovement entity.
func (m *CashMovementModel) ToDomain() *ledger.CashMovement {
	return &ledger.CashMovement{
		ID:          m.ID,
		Date:        m.Date,
		Amount:      m.Amount,
		Description: m.Description,
	}
}

// CashMovementModelFromDomain populates the persistence model from a domain CashMovement.
func CashMovementModelFromDomain(c *ledger.CashMovement) *CashMovementModel {
	return &CashMovementModel{
		ID:          c.ID,
		Date:        c.Date,
		Amount:      c.Amount,
		Description: c.Description,
	}
}
