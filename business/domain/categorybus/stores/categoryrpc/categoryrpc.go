// Package categoryrpc provides category access through the remote backend.
package categoryrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages category calls against the remote backend.
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

// Query fetches the categories for the tenant.
func (s *Store) Query(ctx context.Context, tenantPhone phone.Phone) ([]categorybus.Category, error) {
	args := struct {
		Phone string `json:"p_phone"`
	}{
		Phone: tenantPhone.String(),
	}

	raw, err := s.client.Call(ctx, "get_categories_by_phone", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[categoryRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	categories := make([]categorybus.Category, 0, len(rows))
	for _, row := range rows {
		c, err := toBusCategory(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// QuerySpending fetches the per category spending for the tenant.
func (s *Store) QuerySpending(ctx context.Context, tenantPhone phone.Phone) ([]categorybus.Spending, error) {
	args := struct {
		Phone        string  `json:"p_phone"`
		CategoryHint *string `json:"p_category_hint"`
		Month        *int    `json:"p_month"`
		Year         *int    `json:"p_year"`
	}{
		Phone: tenantPhone.String(),
	}

	raw, err := s.client.Call(ctx, "get_spending_by_category", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[spendingRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	spending := make([]categorybus.Spending, 0, len(rows))
	for _, row := range rows {
		sp, err := toBusSpending(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		spending = append(spending, sp)
	}

	return spending, nil
}
