package routes

import (
	"log/slog"
	"net/http"

	"duo_webapp/internal/adform"
	"duo_webapp/internal/controllers"
	"duo_webapp/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(log *slog.Logger, catalog adform.Catalog) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)

	adController := controllers.NewAdController(catalog, log)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/games", adController.Games)

	r.Route("/ads", func(r chi.Router) {
		r.Get("/new", adController.New)
		r.Post("/", adController.Create)
	})

	return r
}
