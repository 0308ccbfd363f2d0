package transactionrpc

import (
	"testing"

	"github.com/google/uuid"
)

func TestToBusTransaction(t *testing.T) {
	name := "Mercado"
	row := transactionRow{
		ID:           "7b1f0a4e-8a1f-4a63-9c25-2f8e1f3c9d10",
		Type:         "expense",
		Amount:       "150.75",
		Description:  "Compras da semana",
		Date:         "2026-08-20",
		CategoryID:   "b4a3c2d1-0000-4000-8000-000000000001",
		CategoryName: &name,
		CreatedAt:    "2026-08-20T14:03:00Z",
	}

	tx, err := toBusTransaction(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.Amount.String() != "150.75" {
		t.Errorf("amount = %s, want 150.75", tx.Amount)
	}
	if tx.CategoryName != "Mercado" {
		t.Errorf("category = %s, want Mercado", tx.CategoryName)
	}
	if tx.Date.Format("2006-01-02") != "2026-08-20" {
		t.Errorf("date = %s", tx.Date)
	}
	if tx.CreatedAt.Hour() != 14 {
		t.Errorf("created at = %s", tx.CreatedAt)
	}
}

func TestToBusTransactionDefaults(t *testing.T) {
	row := transactionRow{
		ID:        uuid.Nil.String(),
		Type:      "income",
		Amount:    "not-a-number",
		Date:      "2026-08-01",
		CreatedAt: "2026-08-01",
	}

	tx, err := toBusTransaction(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.CategoryName != "Sem categoria" {
		t.Errorf("category = %s, want Sem categoria", tx.CategoryName)
	}
	if !tx.Amount.IsZero() {
		t.Errorf("amount = %s, want zero for a malformed decimal", tx.Amount)
	}
}

func TestToBusTransactionBadType(t *testing.T) {
	row := transactionRow{
		ID:   uuid.Nil.String(),
		Type: "transfer",
		Date: "2026-08-01",
	}

	if _, err := toBusTransaction(row); err == nil {
		t.Error("expected an error for an unknown entry type")
	}
}
