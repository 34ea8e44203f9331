package list_resources

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
)

// ListResourcesResponse HTTP response model
type ListResourcesResponse struct {
	Filter    string                      `json:"filter"`
	Resources []handlers.ResourceResponse `json:"resources"`
}
