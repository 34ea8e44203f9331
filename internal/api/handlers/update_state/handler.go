package update_state

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgUnknownTab         = "неизвестная вкладка"
	msgUnknownFilter      = "неизвестный фильтр"
	msgSlotConflict       = "нельзя одновременно выбрать и сбросить слот"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/state
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var req UpdateStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/state - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ClearTimeSlot && req.TimeSlot != nil {
		handlers.RespondBadRequest(w, msgSlotConflict)
		return
	}

	upd, err := req.ToUpdate()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTab):
			h.logger.Warn("PATCH /sessions/{id}/state - %v", err)
			handlers.RespondBadRequest(w, msgUnknownTab)

		case errors.Is(err, domain.ErrUnknownFilter):
			h.logger.Warn("PATCH /sessions/{id}/state - %v", err)
			handlers.RespondBadRequest(w, msgUnknownFilter)

		default:
			h.logger.Error("PATCH /sessions/{id}/state - Failed to parse request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	sess.Store.Apply(upd)

	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(sess.Store.Snapshot()))
}
