package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasdmc/leadbot/pkg/logging"
)

// RequestLogger emits structured logs for every HTTP request. WebSocket
// upgrades get only the start entry: the connection lives as long as the chat
// session, so a duration record for it would just restate the session length.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			upgrade := strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
			logger.Info("request started",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", reqID,
				"remote_ip", r.RemoteAddr,
				"websocket", upgrade,
			)
			next.ServeHTTP(w, r)
			if upgrade {
				return
			}
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", reqID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
