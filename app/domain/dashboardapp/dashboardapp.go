// Package dashboardapp maintains the app layer api for the dashboard
// summaries.
package dashboardapp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/app/sdk/query"
	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/sdk/web"
)

type app struct {
	summaryBus *summarybus.Core
}

func newApp(summaryBus *summarybus.Core) *app {
	return &app{
		summaryBus: summaryBus,
	}
}

// summary returns the aggregate figures for the current month. A tenant
// with no transactions yet gets a zeroed summary, not an error.
func (a *app) summary(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	month, hasData, err := a.summaryBus.Month(ctx, tenantPhone)
	if err != nil {
		return errs.Newf(errs.Internal, "month: %s", err)
	}

	return toAppSummary(month, hasData)
}

func (a *app) history(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	monthsBack := summarybus.DefaultMonthsBack
	if v := r.URL.Query().Get("months"); v != "" {
		monthsBack, err = strconv.Atoi(v)
		if err != nil {
			return errs.Newf(errs.InvalidArgument, "invalid months: %q", v)
		}
	}

	points, err := a.summaryBus.History(ctx, tenantPhone, monthsBack)
	if err != nil {
		return errs.Newf(errs.Internal, "history: %s", err)
	}

	return query.NewResult(toAppHistory(points))
}
