package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/config"
	"github.com/savasana-io/savasana/internal/store"
)

type Api struct {
	Config config.Config
	Store  *store.Store
	Tokens *auth.TokenManager
	Router *chi.Mux
}

func NewApi(cfg config.Config, st *store.Store, tokens *auth.TokenManager) *Api {
	api := &Api{
		Config: cfg,
		Store:  st,
		Tokens: tokens,
		Router: chi.NewRouter(),
	}

	api.setupRoutes()
	return api
}

func (api *Api) setupRoutes() {
	r := api.Router
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Heartbeat("/heartbeat"))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", api.LoginHandler)
		r.Post("/auth/register", api.RegisterHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(api.Tokens))

			r.Get("/session", api.ListSessionsHandler)
			r.Get("/session/{id}", api.GetSessionHandler)
			r.Post("/session", api.CreateSessionHandler)
			r.Put("/session/{id}", api.UpdateSessionHandler)
			r.Delete("/session/{id}", api.DeleteSessionHandler)
			r.Post("/session/{id}/participate/{userId}", api.ParticipateHandler)
			r.Delete("/session/{id}/participate/{userId}", api.UnparticipateHandler)

			r.Get("/teacher", api.ListTeachersHandler)
			r.Get("/teacher/{id}", api.GetTeacherHandler)

			r.Get("/user/{id}", api.GetUserHandler)
			r.Delete("/user/{id}", api.DeleteUserHandler)
		})
	})
}

func (api *Api) Serve() {
	r := chi.NewRouter()

	// Add CORS middleware before the API routes
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Mount("/", api.Router)

	log.Printf("Starting API server on 0.0.0.0:%d", api.Config.APIPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", api.Config.APIPort), r))
}

// respondJSON writes a JSON body with the given status code.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
