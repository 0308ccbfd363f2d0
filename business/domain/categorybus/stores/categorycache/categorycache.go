// Package categorycache provides a read cache in front of the category
// store. Category lists change rarely and back every dashboard view, so a
// short TTL saves a backend round trip per render. Spending aggregates are
// not cached; they change with every transaction.
package categorycache

import (
	"context"
	"time"

	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/viccon/sturdyc"
)

// Store manages the cached category access.
type Store struct {
	log    *logger.Logger
	storer categorybus.Storer
	cache  *sturdyc.Client[[]categorybus.Category]
}

// NewStore constructs the cached store wrapping the specified storer.
func NewStore(log *logger.Logger, storer categorybus.Storer, ttl time.Duration) *Store {
	const capacity = 1000
	const numShards = 8
	const evictionPercentage = 10

	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[[]categorybus.Category](capacity, numShards, ttl, evictionPercentage),
	}
}

// Query fetches the categories for the tenant, serving from cache when the
// entry is still fresh.
func (s *Store) Query(ctx context.Context, tenantPhone phone.Phone) ([]categorybus.Category, error) {
	fetch := func(ctx context.Context) ([]categorybus.Category, error) {
		s.log.Info(ctx, "categorycache: miss, fetching from backend", "phone", tenantPhone)
		return s.storer.Query(ctx, tenantPhone)
	}

	return s.cache.GetOrFetch(ctx, tenantPhone.String(), fetch)
}

// QuerySpending passes through to the underlying store.
func (s *Store) QuerySpending(ctx context.Context, tenantPhone phone.Phone) ([]categorybus.Spending, error) {
	return s.storer.QuerySpending(ctx, tenantPhone)
}
