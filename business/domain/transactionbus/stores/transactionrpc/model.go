package transactionrpc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
	"github.com/granazap/painel/business/types/phone"
)

// transactionRow represents the wire shape of a transaction record. Numeric
// columns arrive as decimal strings.
type transactionRow struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryID   string  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	CreatedAt    string  `json:"created_at"`
}

func toBusTransaction(row transactionRow) (transactionbus.Transaction, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return transactionbus.Transaction{}, fmt.Errorf("parse id: %w", err)
	}

	kind, err := entrykind.Parse(row.Type)
	if err != nil {
		return transactionbus.Transaction{}, fmt.Errorf("parse type: %w", err)
	}

	var categoryID uuid.UUID
	if row.CategoryID != "" {
		categoryID, err = uuid.Parse(row.CategoryID)
		if err != nil {
			return transactionbus.Transaction{}, fmt.Errorf("parse category id: %w", err)
		}
	}

	categoryName := "Sem categoria"
	if row.CategoryName != nil && *row.CategoryName != "" {
		categoryName = *row.CategoryName
	}

	date, err := parseDate(row.Date)
	if err != nil {
		return transactionbus.Transaction{}, fmt.Errorf("parse date: %w", err)
	}

	createdAt, err := parseDate(row.CreatedAt)
	if err != nil {
		return transactionbus.Transaction{}, fmt.Errorf("parse created_at: %w", err)
	}

	return transactionbus.Transaction{
		ID:           id,
		Kind:         kind,
		Amount:       money.Parse(row.Amount),
		Description:  row.Description,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Date:         date,
		CreatedAt:    createdAt,
	}, nil
}

func toCreateArgs(tenantPhone phone.Phone, nt transactionbus.NewTransaction) any {
	return struct {
		Phone       string `json:"p_phone"`
		Type        string `json:"p_type"`
		Amount      string `json:"p_amount"`
		Description string `json:"p_description"`
		CategoryID  string `json:"p_category_id"`
		Date        string `json:"p_date"`
	}{
		Phone:       tenantPhone.String(),
		Type:        nt.Kind.String(),
		Amount:      nt.Amount.String(),
		Description: nt.Description,
		CategoryID:  nt.CategoryID.String(),
		Date:        nt.Date.Format("2006-01-02"),
	}
}

// parseDate accepts both full timestamps and date only values; the backend
// mixes the two across procedures.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
