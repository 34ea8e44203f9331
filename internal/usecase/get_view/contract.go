package get_view

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

// SessionStore чтение состояния сессии
type SessionStore interface {
	Snapshot() session.State
	Resources() []domain.Resource
	TimeSlots() []domain.TimeSlot
	CalendarDays() []string
	Filters() []domain.Filter
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
