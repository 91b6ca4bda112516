package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"globalnews/internal/config"
	mongoRepo "globalnews/internal/infra/adapter/persistence/mongodb"
	"globalnews/internal/infra/db"
	"globalnews/internal/infra/notifier"
	"globalnews/internal/observability/logging"
	env "globalnews/pkg/config"

	"globalnews/internal/usecase/broadcast"
	newsUC "globalnews/internal/usecase/news"
	"globalnews/internal/usecase/notify"
	userUC "globalnews/internal/usecase/user"

	hhttp "globalnews/internal/handler/http"
	"globalnews/internal/handler/http/middleware"
	hnews "globalnews/internal/handler/http/news"
	"globalnews/internal/handler/http/requestid"
	huser "globalnews/internal/handler/http/user"
	"globalnews/internal/handler/ws"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := initStore(ctx, logger)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect store", slog.Any("error", err))
		}
	}()

	components := setupServer(ctx, logger, cfg, client)
	runServer(ctx, cancel, logger, cfg, components)
}

// initStore connects to MongoDB or exits.
func initStore(ctx context.Context, logger *slog.Logger) *mongo.Client {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := db.Open(connectCtx)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	return client
}

func getVersion() string {
	return env.GetEnvString("VERSION", "dev")
}

// serverComponents holds everything runServer needs for operation and
// graceful shutdown.
type serverComponents struct {
	handler http.Handler
	notify  notify.Service
}

// setupServer wires repositories, use cases, the broadcast hub, and all
// routes into one handler.
func setupServer(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig, client *mongo.Client) *serverComponents {
	database := db.Database(client)

	newsSvc := &newsUC.Service{
		Repo:     mongoRepo.NewNewsRepo(database),
		Location: feedLocation(logger, cfg),
	}

	// The hub snapshots the live set through the news service, and the
	// news service fans publishes out through the hub.
	hub := broadcast.NewHub(newsSvc.LiveSnapshot, logger)
	go hub.Run(ctx)
	newsSvc.Broadcaster = hub

	notifySvc := notify.NewService(buildNotifier(logger, cfg), 4, logger)

	userSvc := &userUC.Service{
		Repo:   mongoRepo.NewUserRepo(database),
		Notify: notifySvc,
	}

	mux := setupRoutes(logger, cfg, client, newsSvc, userSvc, hub)
	handler := applyMiddleware(logger, cfg, mux)

	return &serverComponents{handler: handler, notify: notifySvc}
}

// feedLocation resolves the configured feed timezone, falling back to UTC.
func feedLocation(logger *slog.Logger, cfg *config.ServerConfig) *time.Location {
	loc, err := time.LoadLocation(cfg.Feed.Timezone)
	if err != nil {
		logger.Warn("invalid feed timezone, using UTC",
			slog.String("timezone", cfg.Feed.Timezone),
			slog.Any("error", err))
		return time.UTC
	}
	return loc
}

// buildNotifier returns the SMTP notifier when configured, a noop otherwise.
func buildNotifier(logger *slog.Logger, cfg *config.ServerConfig) notifier.Notifier {
	if !cfg.SMTP.Enabled {
		logger.Info("email notifications disabled")
		return notifier.Noop{}
	}

	logger.Info("email notifications enabled",
		slog.String("host", cfg.SMTP.Host),
		slog.Int("port", cfg.SMTP.Port))
	return notifier.NewSMTPNotifier(notifier.SMTPConfig{
		Enabled:  true,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTPPassword(),
		From:     cfg.SMTP.From,
		Timeout:  time.Duration(cfg.SMTP.TimeoutSeconds) * time.Second,
	})
}

// setupRoutes registers every HTTP and WebSocket route.
func setupRoutes(
	logger *slog.Logger,
	cfg *config.ServerConfig,
	client *mongo.Client,
	newsSvc *newsUC.Service,
	userSvc *userUC.Service,
	hub *broadcast.Hub,
) *http.ServeMux {
	// Mutating endpoints share one sliding-window limiter.
	var limit func(http.Handler) http.Handler
	if cfg.RateLimit.Limit > 0 {
		rl := hhttp.NewRateLimiter(cfg.RateLimit.Limit, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		limit = rl.Limit
		logger.Info("rate limiting enabled",
			slog.Int("limit", cfg.RateLimit.Limit),
			slog.Int("window_seconds", cfg.RateLimit.WindowSeconds))
	}

	pinger := db.Pinger{Client: client}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", &hhttp.LiveHandler{})
	mux.Handle("GET /health", &hhttp.HealthHandler{Store: pinger, Version: getVersion()})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: pinger})
	mux.Handle("GET /live-probe", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	mux.Handle("GET /live", ws.NewHandler(hub, newsSvc, logger))

	hnews.Register(mux, newsSvc, logger, limit)
	huser.Register(mux, userSvc, limit)

	return mux
}

// applyMiddleware wraps the mux with the shared middleware chain.
// Order (outermost first): CORS → request ID → recover → logging → body
// limit → metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) http.Handler {
	corsCfg := middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)
	corsCfg.Logger = logger
	logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsCfg)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal,
// then drains: stop accepting requests, stop the hub, flush pending
// notifications.
func runServer(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, cfg *config.ServerConfig, components *serverComponents) {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           components.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// Stops the hub, which closes every open WebSocket stream.
	cancel()

	if err := components.notify.Shutdown(shutdownCtx); err != nil {
		logger.Error("notification drain failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
