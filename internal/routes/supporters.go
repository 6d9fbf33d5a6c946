package routes

import (
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/internal/handlers"
	"github.com/gorilla/mux"
)

func registerSupporterRoutes(grp *mux.Router, handler *handlers.Handler) {
	grp.HandleFunc("/supporters", handler.ListSupporters).Methods(http.MethodGet)

	webhooks := grp.PathPrefix("/webhooks").Subrouter()
	webhooks.HandleFunc("/payment", handler.PaymentWebhook).Methods(http.MethodPost)
	webhooks.HandleFunc("/payment", handler.WebhookStatus).Methods(http.MethodGet)
}
