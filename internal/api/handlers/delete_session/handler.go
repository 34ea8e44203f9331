package delete_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия не найдена"
)

type Handler struct {
	sessions SessionDeleter
	logger   Logger
}

func NewHandler(sessions SessionDeleter, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
// Выход: незавершенная попытка входа отменяется, состояние сессии удаляется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)[middleware.SessionIDVar]

	if err := h.sessions.Delete(sessionID); err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidSessionID):
			h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, registry.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
