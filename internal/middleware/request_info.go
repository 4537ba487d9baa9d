package middleware

import (
	"net/http"

	"github.com/dangerclosesec/modgate/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestInfo attaches request id, client address and user agent to the
// context so recorded activation attempts can be traced back to a request.
// Mount it after chi's RequestID and RealIP middleware.
func RequestInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequestInfo(r.Context(), audit.RequestInfo{
			RequestID: chimw.GetReqID(r.Context()),
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
