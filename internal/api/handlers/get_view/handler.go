package get_view

import (
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

const (
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	useCase GetViewUseCase
	logger  Logger
}

func NewHandler(useCase GetViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/view
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getView.Request{
		Store:    sess.Store,
		UserName: sess.Gate.State().Login,
	})
	if err != nil {
		h.logger.Error("GET /sessions/{id}/view - Failed to build view: session_id=%s, error=%v", sess.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
