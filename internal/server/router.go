package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"orderdesk/internal/auth"
	"orderdesk/internal/infrastructure/metrics"
	ordercontroller "orderdesk/internal/order/controller"
)

// NewRouter wires the HTTP surface. Order routes sit behind the session gate;
// auth, health and metrics endpoints are open.
func NewRouter(
	authCtrl *auth.Controller,
	ordersCtrl *ordercontroller.OrdersController,
	gate func(http.Handler) http.Handler,
	serverMetrics *metrics.ServerMetrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	if serverMetrics != nil {
		r.Use(serverMetrics.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authCtrl.Login)
		r.Post("/auth/logout", authCtrl.Logout)
		r.Get("/auth/me", authCtrl.Me)

		r.Route("/orders", func(r chi.Router) {
			r.Use(gate)
			r.Get("/", ordersCtrl.List)
			r.Post("/", ordersCtrl.Create)
			r.Put("/{id}", ordersCtrl.Update)
			r.Delete("/{id}", ordersCtrl.Delete)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}

// recoverer turns a handler panic into a logged 500 with a generic body; no
// internal detail reaches the client.
func recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
