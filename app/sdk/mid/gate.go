package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/sdk/web"
)

// Gate protects routes behind the auth lifecycle. The loading check comes
// before the user check on purpose: the provider can populate the user
// before the canonical initial notification, and protected data must never
// be served from that intermediate state.
func Gate(authBus *authbus.Core) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			state := authBus.Snapshot()

			if state.Loading {
				return errs.New(errs.Unavailable, errors.New("authentication still loading, retry"))
			}

			if state.User == nil {
				return errs.New(errs.Unauthenticated, errors.New("not signed in"))
			}

			if state.Tenant == nil {
				if state.Error != "" {
					return errs.Newf(errs.FailedPrecondition, "%s", state.Error)
				}
				return errs.New(errs.FailedPrecondition, errors.New("tenant not resolved"))
			}

			ctx = setUser(ctx, *state.User)
			ctx = setTenant(ctx, *state.Tenant)

			return next(ctx, r)
		}

		return h
	}

	return m
}
