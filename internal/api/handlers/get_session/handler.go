package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
)

const (
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id} - Session missing in context")
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(sess))
}
