package routes

import (
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/internal/handlers"
	"github.com/gorilla/mux"
)

func registerStatsRoutes(grp *mux.Router, handler *handlers.Handler) {
	router := grp.PathPrefix("/stats").Subrouter()

	// fixed paths first so they are not taken as usernames
	router.HandleFunc("/all", handler.GetAllUsers).Methods(http.MethodGet)
	router.HandleFunc("/top", handler.GetTopUsers).Methods(http.MethodGet)

	router.HandleFunc("/{username}", handler.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/{username}", handler.GenerateStats).Methods(http.MethodPost)
	router.HandleFunc("/{username}/insights", handler.StreamInsights).Methods(http.MethodPost)
}
