package httptransport

import (
	"fmt"
	"net/http"

	"parcelsort/internal/classifier"
	"parcelsort/pkg/platform/httputil"
	"parcelsort/pkg/requestcontext"
)

// Info describes the running service.
type Info struct {
	Name    string
	Version string
}

type platformHandler struct {
	info Info
}

func newPlatformHandler(info Info) *platformHandler {
	return &platformHandler{info: info}
}

// HealthResponse is the liveness payload. It never depends on classification.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}

func (h *platformHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Service:   h.info.Name,
		Timestamp: requestcontext.Now(r.Context()).UnixMilli(),
	})
}

// InfoResponse documents the API for humans exploring it with curl.
type InfoResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
	Examples    map[string]string `json:"examples"`
	Rules       map[string]string `json:"rules"`
}

func (h *platformHandler) handleInfo(w http.ResponseWriter, r *http.Request) {
	const classifyQuery = "/api/v1/packages/classify?width=%d&height=%d&length=%d&mass=%d"
	httputil.WriteJSON(w, http.StatusOK, InfoResponse{
		Name:        h.info.Name,
		Version:     h.info.Version,
		Description: "Classifies packages and assigns stack types based on dimensions and weight",
		Endpoints: map[string]string{
			"classify":     "/api/v1/packages/classify?width={width}&height={height}&length={length}&mass={mass}",
			"classifyPath": "/api/v1/packages/classify/{width}/{height}/{length}/{mass}",
			"classifyBody": "POST /api/v1/packages/classify",
			"info":         "/api/v1/packages/info",
			"health":       "/api/v1/packages/health",
		},
		Examples: map[string]string{
			"standard": fmt.Sprintf(classifyQuery, 50, 30, 20, 5000),
			"bulky":    fmt.Sprintf(classifyQuery, 150, 30, 20, 5000),
			"heavy":    fmt.Sprintf(classifyQuery, 50, 30, 20, 25000),
			"rejected": fmt.Sprintf(classifyQuery, 150, 30, 20, 25000),
		},
		Rules: map[string]string{
			"bulky": fmt.Sprintf("Any dimension >= %dcm OR volume >= %d cm³",
				classifier.BulkyDimensionLimit, classifier.BulkyVolumeLimit),
			"heavy":    fmt.Sprintf("Mass >= %d grams", int(classifier.HeavyMassLimit)),
			"standard": "Neither bulky nor heavy",
			"special":  "Bulky OR heavy (not both)",
			"rejected": "Both bulky AND heavy",
		},
	})
}
