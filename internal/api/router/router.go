package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/atlasdmc/leadbot/internal/http/middleware"
	"github.com/atlasdmc/leadbot/internal/webchat"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Webchat            *webchat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP limit on the chat endpoints. Zero means the default of
	// 5 req/s with a burst of 20, generous for a human clicking options.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handleHealth)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Webchat != nil {
		rate := cfg.RateLimitPerSecond
		if rate <= 0 {
			rate = 5
		}
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 20
		}

		r.Route("/chat", func(chat chi.Router) {
			chat.Get("/widget.js", cfg.Webchat.HandleWidgetJS)
			chat.Get("/ws", cfg.Webchat.HandleWebSocket)
			chat.Group(func(limited chi.Router) {
				limited.Use(httpmiddleware.RateLimit(rate, burst))
				limited.Post("/message", cfg.Webchat.HandleMessage)
				limited.Get("/session", cfg.Webchat.HandleSession)
			})
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
