package login

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
	msgGateBusy           = "идет проверка входа"
	msgRejected           = "неверный логин или пароль"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/login
// 202 - пароль совпал, вход завершится после задержки; 401 - отказ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	outcome, err := submit(sess.Gate, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrGateBusy):
			h.logger.Warn("POST /sessions/{id}/login - Gate busy: session_id=%s", sess.ID)
			handlers.RespondConflict(w, msgGateBusy)

		default:
			h.logger.Error("POST /sessions/{id}/login - Failed to submit: session_id=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &LoginResponse{
		Outcome: string(outcome),
		Gate:    handlers.FromGateState(sess.Gate.State()),
	}

	if outcome == auth.OutcomeRejected {
		h.logger.Warn("POST /sessions/{id}/login - Credentials rejected: session_id=%s", sess.ID)
		resp.Message = msgRejected
		handlers.RespondJSON(w, http.StatusUnauthorized, resp)
		return
	}

	h.logger.Info("POST /sessions/{id}/login - Login pending: session_id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusAccepted, resp)
}

func submit(gate *auth.Gate, req *LoginRequest) (auth.Outcome, error) {
	if req.Login != nil {
		if err := gate.SetLogin(*req.Login); err != nil {
			return "", err
		}
	}
	if req.Password != nil {
		if err := gate.SetPassword(*req.Password); err != nil {
			return "", err
		}
	}
	return gate.Submit()
}
