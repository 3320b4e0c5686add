package ledger

import (
	"strings"

	"github.com/quiniela/backend/internal/domain/shared"
)

// Field length bounds for Client attributes
const (
	MaxNameLength     = 120
	MaxDocumentLength = 32
	MaxPhoneLength    = 32
	MaxAddressLength  = 200
)

// Client represents a person with an outstanding ledger of debts and payments.
// It is the aggregate root for ledger operations: debts and payments never
// exist without their owning client.
type Client struct {
	ID       uint
	Name     string
	Document string
	Phone    string
	Address  string
	Debts    []Debt
	Payments []Payment
}

// NewClient creates a new client with a validated name and optional contact fields
func NewClient(name, document, phone, address string) (*Client, error) {
	c := &Client{}
	if err := c.Update(name, document, phone, address); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the client's editable fields after validation
func (c *Client) Update(name, document, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Client name is required")
	}
	if len(name) > MaxNameLength {
		return shared.NewValidationError("Client name cannot exceed 120 characters")
	}
	if len(document) > MaxDocumentLength {
		return shared.NewValidationError("Document cannot exceed 32 characters")
	}
	if len(phone) > MaxPhoneLength {
		return shared.NewValidationError("Phone cannot exceed 32 characters")
	}
	if len(address) > MaxAddressLength {
		return shared.NewValidationError("Address cannot exceed 200 characters")
	}

	c.Name = name
	c.Document = strings.TrimSpace(document)
	c.Phone = strings.TrimSpace(phone)
	c.Address = strings.TrimSpace(address)
	return nil
}
