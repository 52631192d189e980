// Package middleware holds the HTTP middleware applied by the router: trace
// ID propagation and JWT authentication.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and attaches a
// request-scoped logger carrying it. Applied early in the chain so every
// subsequent handler logs with the same trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
