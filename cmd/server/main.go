package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tontine/internal/auth"
	"github.com/mmynk/tontine/internal/changefeed"
	"github.com/mmynk/tontine/internal/config"
	"github.com/mmynk/tontine/internal/ledger"
	"github.com/mmynk/tontine/internal/lifecycle"
	"github.com/mmynk/tontine/internal/metrics"
	"github.com/mmynk/tontine/internal/middleware"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/service"
	"github.com/mmynk/tontine/internal/storage/sqlite"
	"github.com/mmynk/tontine/pkg/logging"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	if err := run(*envFile); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// Change hints: role cache invalidation and WatchGroup streams
	broker := changefeed.New()
	store.SetNotifier(broker)
	resolver := roles.NewCachingResolver(store)
	broker.Listen(resolver.HandleChange)
	if m != nil {
		broker.OnDrop(m.ObserveDrop)
	}

	var notifier notify.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.AppName, cfg.FromEmail)
		slog.Info("Reminders via SendGrid", "from", cfg.FromEmail)
	} else {
		notifier = notify.NewLogNotifier(nil)
		slog.Warn("No SendGrid API key configured, reminders are only logged")
	}

	var observer lifecycle.Observer
	if m != nil {
		notifier = m.Notifier(notifier)
		observer = m
	}
	manager := lifecycle.NewManager(store, resolver, observer)
	ledgerSvc := ledger.NewService(store, resolver, notifier)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if m != nil {
		interceptors = append(interceptors, m.Interceptor())
	}
	interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(service.NewGroupService(store, resolver, broker, cfg.WatchBuffer), opts))
	mux.Handle(protoconnect.NewCycleServiceHandler(service.NewCycleService(manager), opts))
	mux.Handle(protoconnect.NewPaymentServiceHandler(service.NewPaymentService(ledgerSvc), opts))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect streaming)
	handler := h2c.NewHandler(corsMiddleware(mux), &http2.Server{})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down", "open_watches", broker.Subscribers())
	}()
	return serve(ctx, srv, ln, 10*time.Second)
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
