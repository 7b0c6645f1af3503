// Package app wires the console's dependencies together and owns the process
// lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/auth"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/backend"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/chat"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/config"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/handler"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/health"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httpclient"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/middleware"
)

// App wires together all dependencies and runs the console service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server

	// authCancel stops the auth service's store watcher during shutdown.
	authCancel context.CancelFunc
}

// NewApp creates the application with every dependency wired. The console has
// no database of its own: business state lives in the church backend and the
// only local persistence is the session store directory.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := newSessionStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Transport to the church backend: retrying client, optionally behind a
	// circuit breaker. 401 responses pass both layers untouched.
	var doer backend.Doer = httpclient.New(httpclient.DefaultConfig())
	if cfg.BreakerEnabled {
		doer = httpclient.NewCircuitBreakerClient(
			httpclient.New(httpclient.DefaultConfig()),
			httpclient.DefaultCircuitBreakerConfig("church-backend"),
			logger,
		)
	}

	backendClient := backend.New(cfg.BackendBaseURL, doer, store, logger)
	bibleClient := backend.NewBibleClient(cfg.BibleAPIURL, httpclient.New(httpclient.DefaultConfig()))

	authService := auth.NewService(store, backendClient, logger)
	authCtx, authCancel := context.WithCancel(context.Background())
	if err := authService.Start(authCtx); err != nil {
		authCancel()
		return nil, fmt.Errorf("start auth service: %w", err)
	}

	healthHandler := health.NewHandler()
	healthHandler.Register("session_store", sessionStoreCheck(cfg))
	healthHandler.RegisterNonCritical("church_backend", backendReachableCheck(cfg.BackendBaseURL))

	cookies := handler.NewCookieCodec(cfg.SessionSecret, cfg.SecureCookies, cfg.SessionMaxAge)
	guard := handler.NewGuard(authService, cookies, nil, logger)
	api := handler.NewAPI(authService, backendClient, bibleClient, cookies, nil, logger)

	chatHandler := chat.NewHandler(
		chat.NewResponder(chat.DefaultRules(), chat.DefaultFallback),
		originChecker(cfg.CORSOrigins),
		logger,
	)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSOrigins

	router := handler.NewRouter(api, guard, chatHandler, healthHandler, handler.RouterConfig{
		CORS:           corsCfg,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		authCancel: authCancel,
	}, nil
}

func newSessionStore(cfg *config.Config, logger *slog.Logger) (session.Store, error) {
	if cfg.UseMemoryStore {
		logger.Warn("using in-memory session store; sessions are lost on restart and not shared across instances")
		return session.NewMemStore(), nil
	}
	store, err := session.NewFileStore(cfg.SessionDir, logger)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// sessionStoreCheck verifies the session directory is writable. A console that
// cannot persist sessions cannot sign anyone in, so this check is critical.
func sessionStoreCheck(cfg *config.Config) health.Checker {
	return func(ctx context.Context) error {
		if cfg.UseMemoryStore {
			return nil
		}
		probe := filepath.Join(cfg.SessionDir, ".healthprobe")
		if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
			return fmt.Errorf("session dir not writable: %w", err)
		}
		return os.Remove(probe)
	}
}

// backendReachableCheck dials the church backend. Non-critical: the console
// can still serve cached session state and the public chat while the backend
// is down.
func backendReachableCheck(baseURL string) health.Checker {
	return func(ctx context.Context) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parse backend URL: %w", err)
		}
		host := u.Host
		if u.Port() == "" {
			if u.Scheme == "https" {
				host += ":443"
			} else {
				host += ":80"
			}
		}
		d := net.Dialer{Timeout: 2 * time.Second}
		conn, err := d.DialContext(ctx, "tcp", host)
		if err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		_ = conn.Close()
		return nil
	}
}

// originChecker restricts WebSocket upgrades to the configured origins.
// Same-origin requests (no Origin header) are always allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown stops the application in order: drain in-flight HTTP requests
// first, then stop the session store watcher.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.authCancel()

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
