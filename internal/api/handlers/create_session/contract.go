package create_session

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
)

// SessionCreator создает сессии
type SessionCreator interface {
	Create() *registry.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
