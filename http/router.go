package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. limiter may be nil to disable rate limiting.
func NewRouter(clients *ClientHandler, mortgages *MortgageHandler, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.HandleFunc("/mortgage/calculate", mortgages.Calculate).Methods(http.MethodPost)

	r.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	r.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	r.HandleFunc("/clients/sort", clients.Sort).Methods(http.MethodPost)
	r.HandleFunc("/clients/{id:[0-9]+}", clients.Get).Methods(http.MethodGet)
	r.HandleFunc("/clients/{id:[0-9]+}", clients.Update).Methods(http.MethodPut)
	r.HandleFunc("/clients/{id:[0-9]+}", clients.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/clients/{id:[0-9]+}/schedule", clients.Schedule).Methods(http.MethodGet)

	return r
}
