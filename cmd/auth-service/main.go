package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studyhive/auth-service/internal/config"
	"github.com/studyhive/auth-service/internal/directory/postgres"
	"github.com/studyhive/auth-service/internal/http/middleware"
	"github.com/studyhive/auth-service/internal/service"
	storeredis "github.com/studyhive/auth-service/internal/store/redis"
	"github.com/studyhive/auth-service/internal/tenant"
	"github.com/studyhive/auth-service/internal/token"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подписант токенов; слабый секрет валит старт здесь.
	signer, err := token.New(cfg.Auth)
	if err != nil {
		log.Error("signer_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Справочник пользователей c таймаутом подключения.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	dir, err := postgres.New(dbCtx, cfg.DB.DatabaseURL, cfg.Timeouts.Store)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer dir.Close()
	log.Info("postgres_connected")

	// Redis-хранилище сессий и одноразовых токенов.
	str, err := storeredis.New(cfg.Redis.RedisURL, "", cfg.Sessions, cfg.OneTime, cfg.Timeouts.Store)
	if err != nil {
		log.Error("redis_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = str.Close() }()
	log.Info("redis_connected")

	// Сервис.
	srvc := service.New(signer, str, str, dir, cfg.OneTime)
	log.Info("service_initialized")

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	// Интроспекция сессии — единственный собственный эндпоинт сервиса;
	// остальной бэкенд монтирует ту же цепочку мидлваров вокруг своих роутов.
	mux.Handle("/v1/session", middleware.Chain(
		http.HandlerFunc(sessionHandler),
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recover(),
		middleware.Timeout(cfg.Timeouts.Request),
		middleware.Authenticate(srvc),
	))

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
	}

	log.Info("service_stopped")
}

// sessionHandler отдаёт данные аутентифицированного принципала.
// Аноним получает 401 — публичных данных у этого эндпоинта нет.
func sessionHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	resp := map[string]string{
		"principal_id": principal.ID.String(),
		"role":         string(principal.Role),
	}
	if uid, ok := tenant.From(r.Context()); ok {
		resp["university_id"] = uid.String()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
