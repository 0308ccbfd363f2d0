// Package transactionapp maintains the app layer api for the transaction
// domain.
package transactionapp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/app/sdk/query"
	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/sdk/web"
)

type app struct {
	transactionBus *transactionbus.Core
}

func newApp(transactionBus *transactionbus.Core) *app {
	return &app{
		transactionBus: transactionBus,
	}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	limit := transactionbus.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return errs.Newf(errs.InvalidArgument, "invalid limit: %q", v)
		}
	}

	txs, err := a.transactionBus.Query(ctx, tenantPhone, limit)
	if err != nil {
		return errs.Newf(errs.Internal, "query: %s", err)
	}

	return query.NewResult(toAppTransactions(txs))
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTransaction
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tenantPhone, err := mid.GetTenantPhone(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	nt, err := toBusNewTransaction(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tx, err := a.transactionBus.Create(ctx, tenantPhone, nt)
	if err != nil {
		return errs.Newf(errs.Internal, "create: %s", err)
	}

	return toAppTransaction(tx)
}
