package select_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingResourceID  = "не указан ID ресурса"
	msgSessionNotFound    = "сессия не найдена"
	msgResourceNotFound   = "ресурс не найден"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/resource
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var req SelectResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/resource - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ResourceID == "" {
		handlers.RespondBadRequest(w, msgMissingResourceID)
		return
	}

	resource, err := sess.Store.ResourceByID(req.ResourceID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrResourceNotFound):
			h.logger.Warn("PUT /sessions/{id}/resource - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/resource - Failed to find resource: resource_id=%s, error=%v", req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	sess.Store.SelectResource(resource)

	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(sess.Store.Snapshot()))
}
