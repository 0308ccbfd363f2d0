// Package categoryapp maintains the app layer api for the category domain.
package categoryapp

import (
	"context"
	"net/http"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/app/sdk/query"
	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/business/types/entrykind"
)

type app struct {
	categoryBus *categorybus.Core
}

func newApp(categoryBus *categorybus.Core) *app {
	return &app{
		categoryBus: categoryBus,
	}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	categories, err := a.categoryBus.Query(ctx, tenantPhone)
	if err != nil {
		return errs.Newf(errs.Internal, "query: %s", err)
	}

	if v := r.URL.Query().Get("kind"); v != "" {
		kind, err := entrykind.Parse(v)
		if err != nil {
			return errs.Newf(errs.InvalidArgument, "invalid kind: %q", v)
		}
		categories = categorybus.Filter(categories, kind)
	}

	return query.NewResult(toAppCategories(categories))
}

func (a *app) querySpending(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	spending, err := a.categoryBus.QuerySpending(ctx, tenantPhone)
	if err != nil {
		return errs.Newf(errs.Internal, "queryspending: %s", err)
	}

	return query.NewResult(toAppSpendings(spending))
}
