// Package tenantrpc provides tenant access through the remote backend.
package tenantrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages tenant lookups against the remote backend.
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

// QueryByIdentity fetches the tenant rows for the calling identity. The
// identity is implicit in the call credentials; the procedure takes no
// arguments.
func (s *Store) QueryByIdentity(ctx context.Context) ([]tenantbus.Tenant, error) {
	raw, err := s.client.Call(ctx, "get_my_tenant", nil)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[tenantRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	tenants := make([]tenantbus.Tenant, 0, len(rows))
	for _, row := range rows {
		t, err := toBusTenant(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}
