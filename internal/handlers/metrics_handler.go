package handlers

import (
	"net/http"

	"study-assistant/internal/metrics"
)

// MetricsHandler exposes the usage counters recorded by the services
type MetricsHandler struct {
	collector metrics.Collector
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(collector metrics.Collector) *MetricsHandler {
	return &MetricsHandler{collector: collector}
}

// Metrics dumps all counters
// @Summary Usage counters
// @Description Returns AI request and token counters by model and status
// @Tags general
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, h.collector.Snapshot())
}
