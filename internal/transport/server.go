package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/arthroviz/andry-engine/internal/service"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	generation *service.Generation
	authToken  string
}

func NewServer(generation *service.Generation, authToken string) *Server {
	return &Server{generation: generation, authToken: authToken}
}

// SetupRoutes configures HTTP routes. Everything except the health check
// requires the bearer token.
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/health", s.healthHandler).Methods("GET")

	api := r.NewRoute().Subrouter()
	api.Use(authMiddleware(s.authToken))

	api.HandleFunc("/generate", s.generateHandler).Methods("POST")
	api.HandleFunc("/artworks/{id}", s.artworkHandler).Methods("GET")
	api.HandleFunc("/artworks/{id}/svg", s.svgHandler).Methods("GET")
	api.HandleFunc("/webhook", s.webhookHandler).Methods("POST")

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
