// Package summaryrpc provides summary access through the remote backend.
package summaryrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages summary calls against the remote backend.
type Store struct {
	log    *logger.Logger
	client *rpc.Client
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, client *rpc.Client) *Store {
	return &Store{
		log:    log,
		client: client,
	}
}

// QueryMonth fetches the current month summary for the tenant.
func (s *Store) QueryMonth(ctx context.Context, tenantPhone phone.Phone) ([]summarybus.Month, error) {
	args := struct {
		Phone string `json:"p_phone"`
	}{
		Phone: tenantPhone.String(),
	}

	raw, err := s.client.Call(ctx, "get_monthly_summary_by_phone", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[monthRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	months := make([]summarybus.Month, 0, len(rows))
	for _, row := range rows {
		months = append(months, toBusMonth(row))
	}

	return months, nil
}

// QueryHistory fetches the summary figures for the past months.
func (s *Store) QueryHistory(ctx context.Context, tenantPhone phone.Phone, monthsBack int) ([]summarybus.HistoryPoint, error) {
	args := struct {
		Phone      string `json:"p_phone"`
		MonthsBack int    `json:"p_months_back"`
	}{
		Phone:      tenantPhone.String(),
		MonthsBack: monthsBack,
	}

	raw, err := s.client.Call(ctx, "get_historical_summary", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[historyRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	points := make([]summarybus.HistoryPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, toBusHistoryPoint(row))
	}

	return points, nil
}
