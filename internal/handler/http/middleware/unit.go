package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/klfacil/erp-backend-go/internal/handler/http/response"
)

// UnitScope enforces the supervisor-scope verdict carried in the token.
// The scope service decides which unit IDs a caller may see and encodes
// them in the `unit_ids` claim; an empty claim means unrestricted
// (administrator). Requests that name a unit outside the scope are
// rejected before any service runs.
func UnitScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := r.URL.Query().Get("unit")
		if requested == "" {
			next.ServeHTTP(w, r)
			return
		}

		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Unit not in caller scope")
			return
		}

		allowed, ok := claims["unit_ids"].([]interface{})
		if !ok || len(allowed) == 0 {
			// No unit restriction on this caller
			next.ServeHTTP(w, r)
			return
		}

		for _, u := range allowed {
			if id, ok := u.(string); ok && id == requested {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Unit not in caller scope")
	})
}
