package transactionapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// =============================================================================
// Transaction (Output)
// =============================================================================

// Transaction represents information about an individual transaction.
type Transaction struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Date         string `json:"date"`
	CreatedAt    string `json:"createdAt"`
}

// Encode implements the web.Encoder interface.
func (t Transaction) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTransaction(bus transactionbus.Transaction) Transaction {
	return Transaction{
		ID:           bus.ID.String(),
		Kind:         bus.Kind.String(),
		Amount:       bus.Amount.String(),
		Description:  bus.Description,
		CategoryID:   bus.CategoryID.String(),
		CategoryName: bus.CategoryName,
		Date:         bus.Date.Format("2006-01-02"),
		CreatedAt:    bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppTransactions(txs []transactionbus.Transaction) []Transaction {
	app := make([]Transaction, len(txs))
	for i, tx := range txs {
		app[i] = toAppTransaction(tx)
	}
	return app
}

// =============================================================================
// NewTransaction (Input)
// =============================================================================

// NewTransaction defines the data needed to add a new transaction.
type NewTransaction struct {
	Kind        string `json:"kind" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required"`
	CategoryID  string `json:"categoryId"`
	Date        string `json:"date"`
}

// Decode implements the web.Decoder interface.
func (app *NewTransaction) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTransaction) Validate() error {
	if err := errs.Check(app); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

func toBusNewTransaction(app NewTransaction) (transactionbus.NewTransaction, error) {
	kind, err := entrykind.Parse(app.Kind)
	if err != nil {
		return transactionbus.NewTransaction{}, fmt.Errorf("parse kind: %w", err)
	}

	var categoryID uuid.UUID
	if app.CategoryID != "" {
		categoryID, err = uuid.Parse(app.CategoryID)
		if err != nil {
			return transactionbus.NewTransaction{}, fmt.Errorf("parse categoryId: %w", err)
		}
	}

	date := time.Now()
	if app.Date != "" {
		date, err = time.Parse("2006-01-02", app.Date)
		if err != nil {
			return transactionbus.NewTransaction{}, fmt.Errorf("parse date: %w", err)
		}
	}

	nt := transactionbus.NewTransaction{
		Kind:        kind,
		Amount:      money.Parse(app.Amount),
		Description: app.Description,
		CategoryID:  categoryID,
		Date:        date,
	}

	return nt, nil
}
