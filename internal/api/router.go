package api

import (
	"net/http"
	_ "walletfx/docs"
	"walletfx/internal/wallet/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(walletHandler *handler.Handler, metricsHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	router.Route("/api/v1/wallet", func(r chi.Router) {
		r.Get("/", walletHandler.GetWallet)
		r.Post("/activations", walletHandler.ScheduleActivation)
		r.Get("/activations/{id}", walletHandler.GetByActivationID)
		r.Get("/supported-currencies", walletHandler.GetSupportedCodes)
	})
	return router
}
