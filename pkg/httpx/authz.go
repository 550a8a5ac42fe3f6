package httpx

import "net/http"

// RequireRole rejects callers whose role (see WithPrincipal) is not one of
// roles with 403.
func RequireRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[roleFromCtx(r.Context())]; !ok {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "access_denied",
					"error_description": "insufficient role",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
