package mid

import (
	"context"
	"net/http"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/metrics"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/foundation/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform way.
// Unexpected errors (status >= 500) are logged.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			_ = metrics.AddErrors(ctx)

			appErr := errs.GetError(err)

			log.Error(ctx, "handled error during request",
				"err", err,
				"source_err_file", appErr.FileName,
				"source_err_func", appErr.FuncName)

			if appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Newf(errs.Internal, "internal error")
			}

			return appErr
		}

		return h
	}

	return m
}
