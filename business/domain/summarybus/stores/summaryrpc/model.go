package summaryrpc

import (
	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/types/money"
)

// monthRow represents the wire shape of a monthly summary record. Numeric
// columns arrive as decimal strings.
type monthRow struct {
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
	MonthName        string `json:"month_name"`
}

// historyRow represents the wire shape of a historical summary record.
type historyRow struct {
	MonthName        string `json:"month_name"`
	MonthKey         string `json:"month_year"`
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

func toBusMonth(row monthRow) summarybus.Month {
	return summarybus.Month{
		TotalIncome:      money.Parse(row.TotalIncome),
		TotalExpense:     money.Parse(row.TotalExpense),
		Balance:          money.Parse(row.Balance),
		TransactionCount: row.TransactionCount,
		MonthName:        row.MonthName,
	}
}

func toBusHistoryPoint(row historyRow) summarybus.HistoryPoint {
	return summarybus.HistoryPoint{
		MonthName:        row.MonthName,
		MonthKey:         row.MonthKey,
		TotalIncome:      money.Parse(row.TotalIncome),
		TotalExpense:     money.Parse(row.TotalExpense),
		Balance:          money.Parse(row.Balance),
		TransactionCount: row.TransactionCount,
	}
}
