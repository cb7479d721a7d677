package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/wellplan/advisor-api/docs"
	"github.com/wellplan/advisor-api/internal/api/handler"
	"github.com/wellplan/advisor-api/internal/api/middleware"
)

type Router struct {
	profileHandler        *handler.ProfileHandler
	recommendationHandler *handler.RecommendationHandler
}

func NewRouter(profileHandler *handler.ProfileHandler, recommendationHandler *handler.RecommendationHandler) *Router {
	return &Router{
		profileHandler:        profileHandler,
		recommendationHandler: recommendationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", rt.profileHandler.Create)
			r.Get("/{profileId}", rt.profileHandler.GetByID)
			r.Put("/{profileId}", rt.profileHandler.Update)

			// Recommendations (nested under profiles)
			r.Route("/{profileId}/recommendations", func(r chi.Router) {
				r.Post("/", rt.recommendationHandler.Generate)
				r.Get("/", rt.recommendationHandler.List)
			})
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/{recommendationId}", rt.recommendationHandler.GetByID)
			r.Post("/{recommendationId}/feedback", rt.recommendationHandler.PostFeedback)
		})
	})

	return r
}
