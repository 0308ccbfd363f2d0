package budgetrpc

import (
	"testing"

	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/types/alertlevel"
)

func TestToBusBudget(t *testing.T) {
	row := budgetRow{
		ID:             "7b1f0a4e-8a1f-4a63-9c25-2f8e1f3c9d10",
		CategoryID:     "b4a3c2d1-0000-4000-8000-000000000001",
		CategoryName:   "Mercado",
		MonthlyLimit:   "1000",
		CurrentSpent:   "850",
		MonthKey:       "2026-08",
		AlertThreshold: "0.8",
		AlertLevel:     "WARNING",
	}

	b, err := toBusBudget(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.Alert.Equal(alertlevel.Warning) {
		t.Errorf("alert = %s, want WARNING", b.Alert)
	}
	if b.AlertThreshold != 0.8 {
		t.Errorf("threshold = %v, want 0.8", b.AlertThreshold)
	}
}

func TestToBusBudgetRecomputesUnknownLevel(t *testing.T) {
	row := budgetRow{
		ID:             "7b1f0a4e-8a1f-4a63-9c25-2f8e1f3c9d10",
		CategoryID:     "b4a3c2d1-0000-4000-8000-000000000001",
		MonthlyLimit:   "1000",
		CurrentSpent:   "1200",
		AlertThreshold: "0.8",
		AlertLevel:     "PANIC",
	}

	b, err := toBusBudget(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.Alert.Equal(alertlevel.Exceeded) {
		t.Errorf("alert = %s, want recomputed EXCEEDED", b.Alert)
	}
}

func TestToBusBudgetBadThreshold(t *testing.T) {
	row := budgetRow{
		ID:             "7b1f0a4e-8a1f-4a63-9c25-2f8e1f3c9d10",
		CategoryID:     "b4a3c2d1-0000-4000-8000-000000000001",
		MonthlyLimit:   "1000",
		CurrentSpent:   "100",
		AlertThreshold: "zero",
		AlertLevel:     "OK",
	}

	b, err := toBusBudget(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.AlertThreshold != budgetbus.DefaultAlertThreshold {
		t.Errorf("threshold = %v, want default %v", b.AlertThreshold, budgetbus.DefaultAlertThreshold)
	}
}
