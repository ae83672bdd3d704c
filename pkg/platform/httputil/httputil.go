// Package httputil holds the JSON response helpers shared by every handler so
// success and error envelopes look the same across endpoints.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	dErrors "parcelsort/pkg/domain-errors"
	"parcelsort/pkg/requestcontext"
)

// maxBodyBytes caps decoded request bodies.
const maxBodyBytes = 1 << 16

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error            string     `json:"error"`
	ErrorDescription string     `json:"error_description,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
}

// Validatable is implemented by request DTOs that normalize and check
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status and error envelope. Internal errors
// never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, statusOf(err), errorResponse(err))
}

// WriteErrorAt is WriteError with a timestamp in the envelope.
func WriteErrorAt(w http.ResponseWriter, err error, at time.Time) {
	resp := errorResponse(err)
	at = at.UTC()
	resp.Timestamp = &at
	WriteJSON(w, statusOf(err), resp)
}

func statusOf(err error) int {
	return dErrors.ToHTTPStatus(dErrors.CodeOf(err))
}

func errorResponse(err error) ErrorResponse {
	code := dErrors.CodeOf(err)
	resp := ErrorResponse{Error: string(code)}
	var de *dErrors.Error
	if code != dErrors.CodeInternal && errors.As(err, &de) {
		resp.ErrorDescription = de.Message
	}
	return resp
}

// DecodeAndPrepare decodes a JSON body into T and runs its Validate method.
// On failure it writes the error response and returns false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		WriteErrorAt(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"), requestcontext.Now(ctx))
		return nil, false
	}
	if err := PT(&req).Validate(); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"request_id", requestID,
			"error", err,
		)
		WriteErrorAt(w, err, requestcontext.Now(ctx))
		return nil, false
	}
	return &req, true
}
