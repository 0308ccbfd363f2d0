package budgetbus_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/types/money"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

type stubStorer struct {
	budgets []budgetbus.Budget
	created []budgetbus.NewBudget
}

func (s *stubStorer) Query(ctx context.Context, tenantPhone phone.Phone) ([]budgetbus.Budget, error) {
	return s.budgets, nil
}

func (s *stubStorer) Create(ctx context.Context, tenantPhone phone.Phone, nb budgetbus.NewBudget) error {
	s.created = append(s.created, nb)
	return nil
}

func TestCreateDefaults(t *testing.T) {
	storer := &stubStorer{}
	core := budgetbus.NewCore(newTestLogger(), storer)
	tenantPhone := phone.MustParse("+5511999999999")

	_, err := core.Create(context.Background(), tenantPhone, budgetbus.NewBudget{
		CategoryHint: "Mercado",
		MonthlyLimit: money.Parse("1000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(storer.created) != 1 {
		t.Fatalf("created = %d, want 1", len(storer.created))
	}

	nb := storer.created[0]
	if nb.AlertThreshold != budgetbus.DefaultAlertThreshold {
		t.Errorf("threshold = %v, want %v", nb.AlertThreshold, budgetbus.DefaultAlertThreshold)
	}
	if want := time.Now().Format("2006-01"); nb.MonthKey != want {
		t.Errorf("month key = %s, want %s", nb.MonthKey, want)
	}
}

func TestCreateRefreshesList(t *testing.T) {
	storer := &stubStorer{
		budgets: []budgetbus.Budget{
			{CategoryName: "Mercado", MonthlyLimit: money.Parse("1000")},
			{CategoryName: "Transporte", MonthlyLimit: money.Parse("300")},
		},
	}
	core := budgetbus.NewCore(newTestLogger(), storer)

	budgets, err := core.Create(context.Background(), phone.MustParse("+5511999999999"), budgetbus.NewBudget{
		CategoryHint:   "Transporte",
		MonthlyLimit:   money.Parse("300"),
		MonthKey:       "2026-08",
		AlertThreshold: 0.9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(budgets) != 2 {
		t.Errorf("budgets = %d, want refreshed list of 2", len(budgets))
	}
}
