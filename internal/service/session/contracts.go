package session

import (
	"context"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// Notifier канал уведомлений пользователю о подтвержденной брони (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, confirmation domain.Confirmation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
