package dashboardapp

import (
	"encoding/json"

	"github.com/granazap/painel/business/domain/summarybus"
)

// Summary represents the aggregate figures for the current month.
type Summary struct {
	TotalIncome      string `json:"totalIncome"`
	TotalExpense     string `json:"totalExpense"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transactionCount"`
	MonthName        string `json:"monthName"`
	HasData          bool   `json:"hasData"`
}

// Encode implements the web.Encoder interface.
func (s Summary) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSummary(bus summarybus.Month, hasData bool) Summary {
	return Summary{
		TotalIncome:      bus.TotalIncome.String(),
		TotalExpense:     bus.TotalExpense.String(),
		Balance:          bus.Balance.String(),
		TransactionCount: bus.TransactionCount,
		MonthName:        bus.MonthName,
		HasData:          hasData,
	}
}

// HistoryPoint represents the aggregate figures for one past month.
type HistoryPoint struct {
	MonthName        string `json:"monthName"`
	MonthKey         string `json:"monthKey"`
	TotalIncome      string `json:"totalIncome"`
	TotalExpense     string `json:"totalExpense"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transactionCount"`
}

// Encode implements the web.Encoder interface.
func (h HistoryPoint) Encode() ([]byte, string, error) {
	data, err := json.Marshal(h)
	return data, "application/json", err
}

func toAppHistory(points []summarybus.HistoryPoint) []HistoryPoint {
	app := make([]HistoryPoint, len(points))
	for i, p := range points {
		app[i] = HistoryPoint{
			MonthName:        p.MonthName,
			MonthKey:         p.MonthKey,
			TotalIncome:      p.TotalIncome.String(),
			TotalExpense:     p.TotalExpense.String(),
			Balance:          p.Balance.String(),
			TransactionCount: p.TransactionCount,
		}
	}
	return app
}
