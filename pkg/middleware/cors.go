package middleware

import (
	"net/http"
	"regexp"

	"github.com/go-chi/cors"
)

var (
	localhostOrigin    = regexp.MustCompile(`^https?://localhost(:\d+)?$`)
	localnetworkOrigin = regexp.MustCompile(`^https?://(127\.0\.0\.1|192\.168\.\d+\.\d+|10\.\d+\.\d+\.\d+)(:\d+)?$`)
)

// CORS allows the configured frontend origin, plus localhost and private
// network origins on any port while not running in production. Requests
// without an Origin header (curl, same-origin) pass through untouched.
func CORS(frontendURL string, production bool) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if origin == frontendURL {
				return true
			}
			if !production {
				return localhostOrigin.MatchString(origin) || localnetworkOrigin.MatchString(origin)
			}
			return false
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	})
}
