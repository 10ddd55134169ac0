package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/0xElectro/tournament-manager/handlers"
)

// SetupRoutes wires the read-only viewer endpoints. Every route is a GET;
// mutations are console-only.
func SetupRoutes(viewer *handlers.ViewerHandler, ws *handlers.WebSocketHandler) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/tournaments/{sport}", func(r chi.Router) {
		r.Get("/standings", viewer.GetStandings)
		r.Get("/schedule", viewer.GetSchedule)
		r.Get("/results", viewer.GetResults)
		r.Get("/teams", viewer.GetTeams)
	})

	router.Get("/ws/tournaments/{sport}", ws.ServeWs)

	return router
}
