// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"

	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/business/types/phone"
)

func checkIsError(e web.Encoder) error {
	err, hasError := e.(error)
	if hasError {
		return err
	}

	return nil
}

// =============================================================================

type ctxKey int

const (
	userKey ctxKey = iota + 1
	tenantKey
)

func setUser(ctx context.Context, usr session.User) context.Context {
	return context.WithValue(ctx, userKey, usr)
}

// GetUser returns the authenticated user from the context.
func GetUser(ctx context.Context) (session.User, error) {
	v, ok := ctx.Value(userKey).(session.User)
	if !ok {
		return session.User{}, errors.New("user not found in context")
	}

	return v, nil
}

func setTenant(ctx context.Context, t tenantbus.Tenant) context.Context {
	return context.WithValue(ctx, tenantKey, t)
}

// GetTenant returns the resolved tenant from the context.
func GetTenant(ctx context.Context) (tenantbus.Tenant, error) {
	v, ok := ctx.Value(tenantKey).(tenantbus.Tenant)
	if !ok {
		return tenantbus.Tenant{}, errors.New("tenant not found in context")
	}

	return v, nil
}

// GetTenantPhone returns the resolved tenant's phone from the context.
func GetTenantPhone(ctx context.Context) (phone.Phone, error) {
	t, err := GetTenant(ctx)
	if err != nil {
		return phone.Phone{}, err
	}

	return t.Phone, nil
}
