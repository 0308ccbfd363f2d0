package transactionbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// Transaction represents an individual financial entry.
type Transaction struct {
	ID           uuid.UUID
	Kind         entrykind.Kind
	Amount       money.Money
	Description  string
	CategoryID   uuid.UUID
	CategoryName string
	Date         time.Time
	CreatedAt    time.Time
}

// NewTransaction contains information needed to create a new transaction.
type NewTransaction struct {
	Kind        entrykind.Kind
	Amount      money.Money
	Description string
	CategoryID  uuid.UUID
	Date        time.Time
}
