package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"parcelsort/internal/classifier"
	"parcelsort/pkg/platform/httputil"
	"parcelsort/pkg/requestcontext"
)

// Service defines the interface for classification operations.
type Service interface {
	Classify(ctx context.Context, req classifier.Request) (*classifier.Result, error)
}

// Handler wires classification endpoints to the classifier service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a classification handler with its dependencies. A nil
// logger discards output.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts classification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/packages/classify", h.HandleClassifyQuery)
	r.Get("/api/v1/packages/classify/{width}/{height}/{length}/{mass}", h.HandleClassifyPath)
	r.Post("/api/v1/packages/classify", h.HandleClassifyBody)
}

// HandleClassifyQuery handles GET /api/v1/packages/classify?width=&height=&length=&mass=.
func (h *Handler) HandleClassifyQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.classifyParams(w, r, &MeasurementParams{
		Width:  q.Get("width"),
		Height: q.Get("height"),
		Length: q.Get("length"),
		Mass:   q.Get("mass"),
	})
}

// HandleClassifyPath handles GET /api/v1/packages/classify/{width}/{height}/{length}/{mass}.
func (h *Handler) HandleClassifyPath(w http.ResponseWriter, r *http.Request) {
	h.classifyParams(w, r, &MeasurementParams{
		Width:  chi.URLParam(r, "width"),
		Height: chi.URLParam(r, "height"),
		Length: chi.URLParam(r, "length"),
		Mass:   chi.URLParam(r, "mass"),
	})
}

// HandleClassifyBody handles POST /api/v1/packages/classify with a JSON body.
func (h *Handler) HandleClassifyBody(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ClassifyRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.classify(w, r, req.ToDomain())
}

func (h *Handler) classifyParams(w http.ResponseWriter, r *http.Request, params *MeasurementParams) {
	ctx := r.Context()
	if err := params.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid classification parameters",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteErrorAt(w, err, requestcontext.Now(ctx))
		return
	}
	h.classify(w, r, params.Parsed())
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request, req classifier.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	result, err := h.service.Classify(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "package classification rejected",
			"request_id", requestID,
			"width", req.Width,
			"height", req.Height,
			"length", req.Length,
			"mass", req.Mass,
			"error", err,
		)
		httputil.WriteErrorAt(w, err, requestcontext.Now(ctx))
		return
	}

	h.logger.InfoContext(ctx, "package classified",
		"request_id", requestID,
		"decision", result.Decision,
		"classification", result.Classification.Strings(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result, requestcontext.Now(ctx)))
}
