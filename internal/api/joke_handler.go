package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rosymaple/dadjoke/internal/api/shared"
	"github.com/rosymaple/dadjoke/internal/service"
)

// JokeHandler handles the personalized joke endpoints.
type JokeHandler struct {
	jokeService service.JokeService
	logger      *slog.Logger
}

// NewJokeHandler creates a new JokeHandler
func NewJokeHandler(jokeService service.JokeService, logger *slog.Logger) *JokeHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &JokeHandler{
		jokeService: jokeService,
		logger:      logger.With("component", "joke_handler"),
	}
}

// TellJoke handles POST /api/jokes and POST /get_joke requests
func (h *JokeHandler) TellJoke(w http.ResponseWriter, r *http.Request) {
	var req JokeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.jokeService.Tell(r.Context(), req.toTellRequest())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "joke served",
		"trace_id", shared.GetTraceID(r.Context()),
		"source", result.Source,
		"image_saved", result.ImageSaved)

	shared.RespondWithJSON(w, r, http.StatusOK, newJokeResponse(result, req.Image))
}

// Health handles GET /health requests
func (h *JokeHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
