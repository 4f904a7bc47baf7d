// Package debugrouter is a small read-only ops sub-router exposing the live
// session count and the pool capacity, mounted under the gin gateway via
// gin.WrapH. Grounded on the teacher's gorilla/mux router.go
// (PathPrefix("/api/v1").Subrouter() style), repurposed here as a
// read-only ops surface rather than the primary API.
package debugrouter

import (
	"encoding/json"
	"net/http"

	"mtgsim/internal/session"

	"github.com/gorilla/mux"
)

// New builds the debug sub-router bound to the session manager.
func New(manager *session.Manager) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/debug").Subrouter()

	api.HandleFunc("/sessions/count", countHandler(manager)).Methods(http.MethodGet)
	api.HandleFunc("/sessions/capacity", capacityHandler(manager)).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func countHandler(manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"count": manager.Count()})
	}
}

func capacityHandler(manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{
			"capacity": session.DefaultCapacity,
			"count":    manager.Count(),
		})
	}
}
