package handlers

import (
	"fmt"
	"net/http"
)

// ServiceHealthResponse is the liveness payload each service group returns
type ServiceHealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheckHandler godoc
// @Summary Server health
// @Description Returns a healthy payload when the server is up
// @Tags general
// @Produce json
// @Success 200 {object} ServiceHealthResponse
// @Router /health [get]
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, ServiceHealthResponse{
		Status:  "healthy",
		Service: "study-assistant",
	})
}

// HomeHandler godoc
// @Summary Home page
// @Description Returns a welcome message for the API server
// @Tags general
// @Produce text/plain
// @Success 200 {string} string "Welcome to the Study Assistant server!"
// @Router / [get]
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	fmt.Fprintln(w, "Welcome to the Study Assistant server!")
}
