package clear_resource

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

// Handle DELETE /api/v1/sessions/{sessionId}/resource
// Возврат из карточки ресурса в список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	sess.Store.ClearResourceSelection()

	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(sess.Store.Snapshot()))
}
