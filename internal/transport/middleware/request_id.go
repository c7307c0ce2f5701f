package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kwokm/mk-todo/pkg/ctxutil"
)

// maxRequestIDLen caps client-supplied ids; longer values are replaced.
const maxRequestIDLen = 128

// RequestID reuses the incoming X-Request-Id or generates a UUID, stores it
// in the request context and echoes it in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(ctxutil.RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			w.Header().Set(ctxutil.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
