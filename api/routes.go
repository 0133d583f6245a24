package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/category"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/handlers/v1/submission"
	"github.com/carson-networks/expense-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/metrics"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
	Metrics *metrics.Metrics
}

// Handler builds the HTTP routes: plain status and metrics endpoints plus the huma v1 API.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", r.Metrics.Handler())

	api := humago.New(mux, huma.DefaultConfig("Expense Dashboard", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	authService := r.Service.Auth
	dashboard := r.Service.Dashboard

	auth.NewLoginHandler(authService).Register(api)
	auth.NewLogoutHandler(authService).Register(api)
	transaction.NewLoadTransactionsHandler(authService, dashboard).Register(api)
	category.NewSummaryHandler(authService, dashboard).Register(api)
	category.NewDetailHandler(authService, dashboard).Register(api)
	submission.NewSubmitHandler(authService, dashboard).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
