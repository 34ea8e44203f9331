package notifier

import (
	"context"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Counter считает подтверждения (метрики)
type Counter interface {
	ObserveConfirmation(category string)
}

// Notifier канал уведомлений о подтвержденной брони
type Notifier interface {
	Notify(ctx context.Context, confirmation domain.Confirmation)
}

// LogNotifier пишет уведомление пользователю в лог сервиса
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает уведомитель через логгер
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify реализует Notifier
func (n *LogNotifier) Notify(_ context.Context, c domain.Confirmation) {
	n.log.Info("Notify: %s (resource id=%s, date=%s)", c.Message(), c.Resource.ID, c.Date)
}

// MetricsNotifier считает подтверждения по категориям
type MetricsNotifier struct {
	counter Counter
}

// NewMetricsNotifier создает уведомитель-счетчик
func NewMetricsNotifier(counter Counter) *MetricsNotifier {
	return &MetricsNotifier{counter: counter}
}

// Notify реализует Notifier
func (n *MetricsNotifier) Notify(_ context.Context, c domain.Confirmation) {
	n.counter.ObserveConfirmation(string(c.Resource.Category))
}

// Fanout рассылает уведомление всем получателям по порядку
type Fanout []Notifier

// Notify реализует Notifier
func (f Fanout) Notify(ctx context.Context, c domain.Confirmation) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, c)
		}
	}
}
