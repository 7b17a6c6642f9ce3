package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/advisorkit/relay/internal/api/server/handlers"
)

func registerRoutes(router *mux.Router, handler *handlers.Handler) {
	router.HandleFunc("/", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/health", handler.APIHealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/agent", handler.AgentHandler).Methods(http.MethodPost)
}
