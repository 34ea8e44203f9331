package list_resources

import (
	"net/http"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

const (
	msgUnknownFilter = "неизвестный фильтр"
)

type Handler struct {
	catalog ResourceCatalog
	logger  Logger
}

func NewHandler(catalog ResourceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources?filter=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.DefaultFilter
	if raw := r.URL.Query().Get("filter"); raw != "" {
		parsed, err := domain.ParseFilter(raw)
		if err != nil {
			h.logger.Warn("GET /resources - Unknown filter: %q", raw)
			handlers.RespondBadRequest(w, msgUnknownFilter)
			return
		}
		filter = parsed
	}

	list := domain.FilterResources(h.catalog.Resources(), filter)

	handlers.RespondJSON(w, http.StatusOK, &ListResourcesResponse{
		Filter:    string(filter),
		Resources: handlers.FromResources(list),
	})
}
