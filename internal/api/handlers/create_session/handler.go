package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
)

type Handler struct {
	sessions SessionCreator
	logger   Logger
}

func NewHandler(sessions SessionCreator, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(sess))
}
