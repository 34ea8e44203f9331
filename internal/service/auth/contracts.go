package auth

// Observer получает исходы попыток входа (метрики)
type Observer interface {
	ObserveLogin(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
