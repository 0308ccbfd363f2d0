package summarybus

import "github.com/granazap/painel/business/types/money"

// Month represents the aggregate figures for the current month.
type Month struct {
	TotalIncome      money.Money
	TotalExpense     money.Money
	Balance          money.Money
	TransactionCount int
	MonthName        string
}

// HistoryPoint represents the aggregate figures for one past month.
type HistoryPoint struct {
	MonthName        string
	MonthKey         string
	TotalIncome      money.Money
	TotalExpense     money.Money
	Balance          money.Money
	TransactionCount int
}
