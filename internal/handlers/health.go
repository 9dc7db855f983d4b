package handlers

import (
	"net/http"
)

// Banner is the plain-text answer of the root path.
const Banner = "FoodLog API is running"

// NewRootHandler answers GET / with a plain-text banner.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Banner))
	}
}

// NewHealthHandler returns a liveness probe.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.OKResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}
