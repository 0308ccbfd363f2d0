package categorybus

import (
	"testing"

	"github.com/granazap/painel/business/types/entrykind"
)

func TestFilter(t *testing.T) {
	categories := []Category{
		{Name: "Salario", Kind: entrykind.Income},
		{Name: "Mercado", Kind: entrykind.Expense},
		{Name: "Transporte", Kind: entrykind.Expense},
	}

	expenses := Filter(categories, entrykind.Expense)
	if len(expenses) != 2 {
		t.Errorf("expenses = %d, want 2", len(expenses))
	}

	income := Filter(categories, entrykind.Income)
	if len(income) != 1 || income[0].Name != "Salario" {
		t.Errorf("income = %v", income)
	}

	if got := Filter(nil, entrykind.Income); len(got) != 0 {
		t.Errorf("nil input should filter to empty, got %v", got)
	}
}
