package routes

import (
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/handlers"
	"github.com/Tusharxhub/GitHubWrapped/internal/middlewares"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterRoutes builds the API router. CORS wraps the router so preflight requests are
// answered before route matching.
func RegisterRoutes(config *config.Config, logger *zap.Logger, handler *handlers.Handler) http.Handler {
	router := mux.NewRouter()
	middleware := middlewares.New(config, logger)

	// global middlewares
	router.Use(middleware.LoggerMiddleware)

	// v1 endpoints
	apiV1 := router.PathPrefix("/v1").Subrouter()
	apiV1.HandleFunc("", handler.Ping).Methods(http.MethodGet)

	registerStatsRoutes(apiV1, handler)
	registerSupporterRoutes(apiV1, handler)

	return middleware.CORS(router)
}
