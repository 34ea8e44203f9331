package list_resources

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// ResourceCatalog справочник ресурсов
type ResourceCatalog interface {
	Resources() []domain.Resource
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
