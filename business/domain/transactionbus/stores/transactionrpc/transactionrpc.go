// Package transactionrpc provides transaction access through the remote
// backend.
package transactionrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages transaction calls against the remote backend.
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

// Query fetches the most recent transactions for the tenant.
func (s *Store) Query(ctx context.Context, tenantPhone phone.Phone, limit int) ([]transactionbus.Transaction, error) {
	args := struct {
		Phone string `json:"p_phone"`
		Limit int    `json:"p_limit"`
	}{
		Phone: tenantPhone.String(),
		Limit: limit,
	}

	raw, err := s.client.Call(ctx, "get_transactions_by_phone", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[transactionRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	txns := make([]transactionbus.Transaction, 0, len(rows))
	for _, row := range rows {
		txn, err := toBusTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// Create inserts a new transaction for the tenant.
func (s *Store) Create(ctx context.Context, tenantPhone phone.Phone, nt transactionbus.NewTransaction) (transactionbus.Transaction, error) {
	args := toCreateArgs(tenantPhone, nt)

	raw, err := s.client.Call(ctx, "create_transaction", args)
	if err != nil {
		return transactionbus.Transaction{}, err
	}

	rows, err := rpc.DecodeRows[transactionRow](raw)
	if err != nil {
		return transactionbus.Transaction{}, fmt.Errorf("decode: %w", err)
	}

	if len(rows) == 0 {
		return transactionbus.Transaction{}, fmt.Errorf("create returned no row")
	}

	return toBusTransaction(rows[0])
}
