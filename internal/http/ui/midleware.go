package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/campfire/webgate/internal/log"
)

type chiMiddleware = func(next http.Handler) http.Handler

func (u ui) registerGlobalMiddlewares() {
	u.router.Use(
		middleware.RequestID,
		u.logMiddleware(),
		middleware.Recoverer,
	)
}

func (u ui) logMiddleware() chiMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := log.CtxWithValues(r.Context(), log.Kv{
				"request-id": middleware.GetReqID(r.Context()),
			})

			u.logger.WithCtxValues(ctx).WithValues(log.Kv{
				"url":    r.URL,
				"method": r.Method,
			}).Debugf("Request received")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
