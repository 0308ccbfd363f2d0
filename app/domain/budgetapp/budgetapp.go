// Package budgetapp maintains the app layer api for the budget domain.
package budgetapp

import (
	"context"
	"net/http"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/app/sdk/query"
	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/sdk/web"
)

type app struct {
	budgetBus *budgetbus.Core
}

func newApp(budgetBus *budgetbus.Core) *app {
	return &app{
		budgetBus: budgetBus,
	}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	budgets, err := a.budgetBus.Query(ctx, tenantPhone)
	if err != nil {
		return errs.Newf(errs.Internal, "query: %s", err)
	}

	return query.NewResult(toAppBudgets(budgets))
}

// create registers a new budget and returns the refreshed list so the
// client can repaint every card in one round trip.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewBudget
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	budgets, err := a.budgetBus.Create(ctx, tenantPhone, toBusNewBudget(app))
	if err != nil {
		return errs.Newf(errs.Internal, "create: %s", err)
	}

	return query.NewResult(toAppBudgets(budgets))
}
