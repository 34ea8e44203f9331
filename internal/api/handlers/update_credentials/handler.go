package update_credentials

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgGateBusy           = "идет проверка входа, поля заблокированы"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/credentials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var req UpdateCredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/credentials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := apply(sess.Gate, &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrGateBusy):
			h.logger.Warn("PATCH /sessions/{id}/credentials - Gate busy: session_id=%s", sess.ID)
			handlers.RespondConflict(w, msgGateBusy)

		default:
			h.logger.Error("PATCH /sessions/{id}/credentials - Failed to update: session_id=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromGateState(sess.Gate.State()))
}

func apply(gate *auth.Gate, req *UpdateCredentialsRequest) error {
	if req.Login != nil {
		if err := gate.SetLogin(*req.Login); err != nil {
			return err
		}
	}
	if req.Password != nil {
		if err := gate.SetPassword(*req.Password); err != nil {
			return err
		}
	}
	return nil
}
