package middleware

import (
	"net/http"

	"github.com/klfacil/erp-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

// DeviceKeyRequired guards the punch capture endpoint. Punch devices are
// not JWT clients; they present the shared device key in X-Device-Key,
// checked against the bcrypt hash from configuration.
func DeviceKeyRequired(deviceKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Device-Key")
			if key == "" {
				response.Unauthorized(w, "missing device key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(deviceKeyHash), []byte(key)); err != nil {
				response.Unauthorized(w, "invalid device key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
