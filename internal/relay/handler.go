// Package relay implements the intake relay: a stateless HTTP handler that
// validates a raw submission and forwards it to the moderation dispatch
// endpoint. The relay only notifies moderation; it does not confirm storage
// and holds no state between requests.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/kudos/internal/logging"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// dispatcher is the outbound surface the handler needs. *Dispatcher
// satisfies it; tests substitute a recording fake.
type dispatcher interface {
	Configured() bool
	Send(ctx context.Context, event Event) error
}

// Handler answers POST with a submission payload and forwards a
// moderation-trigger event.
type Handler struct {
	dispatch dispatcher
	logger   logging.Logger
}

func NewHandler(dispatch dispatcher, logger logging.Logger) *Handler {
	return &Handler{dispatch: dispatch, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.logger.With("req_id", uuid.NewString())

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var payload testimonial.SubmissionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// An undecodable body has every required field missing.
		log.Warn(ctx, "undecodable submission body", "error", err.Error())
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if payload.MissingRequired() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !h.dispatch.Configured() {
		log.Error(ctx, "missing dispatch credentials")
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	if err := h.dispatch.Send(ctx, NewEvent(payload)); err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			log.Error(ctx, "dispatch API error", "status", upstream.Status, "body", upstream.Body)
		} else {
			log.Error(ctx, "dispatch call failed", "error", err.Error())
		}
		writeError(w, http.StatusInternalServerError, "Failed to trigger moderation workflow")
		return
	}

	log.Info(ctx, "testimonial queued for moderation", "name", payload.Name)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Testimonial received and queued for review",
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
