package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_api/internal/common"
)

// RateLimit is a fixed-window limiter using Redis INCR/EXPIRE, keyed by
// client IP. A nil client or a Redis error fails open so the API stays
// available without Redis.
func RateLimit(client *redis.Client, maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				next.ServeHTTP(w, r)
				return
			}

			ident := clientIP(r)
			key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + ident

			val, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if val == 1 {
				client.Expire(r.Context(), key, window)
			}

			if val > int64(maxRequests) {
				rateLimitBlocked.WithLabelValues(r.URL.Path).Inc()
				common.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware rewrites RemoteAddr from forwarding headers.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
