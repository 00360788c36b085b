package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Dashboard routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/dashboard", handler.GetDashboard).Methods("GET")
	api.HandleFunc("/dashboard/date", handler.SelectDate).Methods("POST")
	api.HandleFunc("/dashboard/next", handler.Next).Methods("POST")
	api.HandleFunc("/dashboard/previous", handler.Previous).Methods("POST")
	api.HandleFunc("/dashboard/export", handler.Export).Methods("GET")

	return r
}
