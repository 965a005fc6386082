package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pawtag/order-service/internal/config"
	"github.com/pawtag/order-service/internal/middleware"
	"github.com/pawtag/order-service/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/pawtag/order-service/docs"
)

const (
	gracefulShutdownTimeout = 10 * time.Second
	healthCheckTimeout      = 2 * time.Second
)

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server
	workers []Worker
	health  func(ctx context.Context) error
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	a := &application{
		logger: logger,
		router: router,
	}

	router.Get("/healthz", a.healthz)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	a.httpSrv = &http.Server{
		Handler:      otelhttp.NewHandler(router, "order-service"),
		Addr:         net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
	}
	return a
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Worker is a background component started before the server accepts
// traffic and stopped after it drains, in reverse order.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
}

func (a *application) SetWorkers(workers ...Worker) {
	a.workers = append(a.workers, workers...)
}

// SetHealthCheck makes /healthz report unavailable when check fails.
func (a *application) SetHealthCheck(check func(ctx context.Context) error) {
	a.health = check
}

func (a *application) Start(ctx context.Context) error {
	for i, w := range a.workers {
		if err := w.Start(ctx); err != nil {
			a.stopWorkers(i)
			return fmt.Errorf("failed to start worker %T: %w", w, err)
		}
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}
	if err := a.stopWorkers(len(a.workers)); err != nil {
		errs = append(errs, err)
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

func (a *application) stopWorkers(n int) error {
	var errs []error
	for i := n - 1; i >= 0; i-- {
		if err := a.workers[i].Stop(); err != nil {
			a.logger.Error("failed to stop worker", slog.String("worker", fmt.Sprintf("%T", a.workers[i])), slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (a *application) healthz(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := a.health(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
			utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
