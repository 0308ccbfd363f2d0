// Package reminderapp maintains the app layer api for the reminder domain.
package reminderapp

import (
	"context"
	"net/http"
	"time"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/reminderbus"
	"github.com/granazap/painel/business/sdk/web"
)

type app struct {
	reminderBus *reminderbus.Core
}

func newApp(reminderBus *reminderbus.Core) *app {
	return &app{
		reminderBus: reminderBus,
	}
}

// query returns the upcoming reminders partitioned into pending, overdue
// and paid buckets.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	reminders, err := a.reminderBus.Query(ctx, tenantPhone)
	if err != nil {
		return errs.Newf(errs.Internal, "query: %s", err)
	}

	return toAppBuckets(reminderbus.Classify(reminders, time.Now()))
}

func (a *app) markPaid(ctx context.Context, r *http.Request) web.Encoder {
	var app MarkPaid
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	if err := a.reminderBus.MarkPaid(ctx, tenantPhone, app.Title); err != nil {
		return errs.Newf(errs.Internal, "markpaid: %s", err)
	}

	return web.NewNoResponse()
}
