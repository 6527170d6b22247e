package api

import (
	_ "nbrates/docs"
	ratehandler "nbrates/internal/rate/handler"
	weekendhandler "nbrates/internal/weekend/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *ratehandler.Handler, weekendHandler *weekendhandler.Handler, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Post("/api/exchangeRates", rateHandler.AddExchangeRates)
	router.Get("/api/exchangeRates", rateHandler.GetAllExchangeRates)
	router.Get("/api/exchangeRates/average", rateHandler.GetAverageExchangeRate)
	router.Get("/api/weekends", weekendHandler.FindAll)
	return router
}
