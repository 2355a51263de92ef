package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atlasdmc/leadbot/internal/api/router"
	"github.com/atlasdmc/leadbot/internal/catalog"
	appconfig "github.com/atlasdmc/leadbot/internal/config"
	"github.com/atlasdmc/leadbot/internal/gateway"
	"github.com/atlasdmc/leadbot/internal/handoff"
	"github.com/atlasdmc/leadbot/internal/notify"
	"github.com/atlasdmc/leadbot/internal/observability/metrics"
	"github.com/atlasdmc/leadbot/internal/webchat"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting leadbot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	reg := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(reg)

	cat := catalog.New(cfg.DefaultLocale)

	submitter := gateway.New(gateway.Config{
		Endpoint: cfg.SubmissionWebhookURL,
		PageURL:  cfg.PageURL,
		Timeout:  cfg.SubmissionTimeout,
	}, chatMetrics, logger)

	handoffBuilder := handoff.NewBuilder(cat, cfg.WhatsAppNumber, cfg.ContactEmail, cfg.ContactPhone)

	// SendGrid is optional; without a key the notifier stays nil and
	// NotifyLead becomes a no-op.
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	}
	notifier := notify.NewLeadNotifier(emailSender, cat, cfg.SalesEmail, logger)

	chat := webchat.NewHandler(webchat.Config{
		Catalog:       cat,
		Submitter:     submitter,
		Handoff:       handoffBuilder,
		Notifier:      notifier,
		Metrics:       chatMetrics,
		Logger:        logger,
		DefaultLocale: cfg.DefaultLocale,
		IdleTTL:       cfg.SessionIdleTTL,
	})

	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	chat.StartJanitor(janitorCtx, time.Minute)

	r := router.New(&router.Config{
		Logger:             logger,
		Webchat:            chat,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
