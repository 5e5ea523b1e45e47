package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/wesleycpo2/spacered-sub000/utils"
)

// AdminKeyMiddleware protects operational trigger endpoints with a static
// header token (X-ADMIN-KEY) checked against the ADMIN_KEY env var.
func AdminKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("ADMIN_KEY")
		if expected == "" {
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{
				Success: false,
				Message: "Admin endpoint belum dikonfigurasi",
			})
			return
		}
		key := r.Header.Get("X-ADMIN-KEY")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
