package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs the handler with all API endpoints registered.
func NewRouter(h *HandlerProvider, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Post("/transactions", h.ProcessTransactionHandler)
	r.Get("/accounts", h.ListAccountsHandler)
	r.Get("/accounts/{clientId}", h.GetAccountHandler)

	return r
}
