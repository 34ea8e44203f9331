package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

const (
	msgSessionNotFound     = "сессия не найдена"
	msgIncompleteSelection = "выберите ресурс и время"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	confirmation, err := sess.Store.ConfirmBooking(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrIncompleteSelection):
			h.logger.Warn("POST /sessions/{id}/confirm - Incomplete selection: session_id=%s", sess.ID)
			handlers.RespondUnprocessable(w, msgIncompleteSelection)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to confirm: session_id=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session_id=%s, resource_id=%s, slot=%s",
		sess.ID, confirmation.Resource.ID, confirmation.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromConfirmation(confirmation))
}
