package registry

// Gauge получает текущее число живых сессий (метрики)
type Gauge interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
