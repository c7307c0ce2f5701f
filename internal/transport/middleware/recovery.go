package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kwokm/mk-todo/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a logged
// 500 response with the JSON error body the API uses everywhere else.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}` + "\n")) //nolint:errcheck
			}()
			next.ServeHTTP(w, r)
		})
	}
}
