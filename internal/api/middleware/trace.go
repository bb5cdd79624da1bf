// Package middleware provides HTTP middleware for the API layer.
package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/excusedraft/excuse-api/internal/api/shared"
	"github.com/excusedraft/excuse-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID and a request-scoped logger to the
// request context. It should be applied after chi's RequestID and early
// enough that all subsequent handlers have access to both.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		// Downstream handlers pick this logger up via
		// logger.FromContextOrDefault so every log line carries the
		// trace ID.
		log := slog.With(slog.String("trace_id", traceID))
		if requestID := chimiddleware.GetReqID(ctx); requestID != "" {
			log = log.With(slog.String("request_id", requestID))
			ctx = logger.WithRequestID(ctx, requestID)
		}
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
