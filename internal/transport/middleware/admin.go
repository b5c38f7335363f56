package middleware

import (
	"net/http"

	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// RequireAdmin rejects callers without the admin role with 403.
// It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
