package domain

import "time"

// Значения сессии по умолчанию
const (
	DefaultTab          = TabResources
	DefaultFilter       = FilterAll
	DefaultSelectedDate = "1 янв"
)

// DefaultLoginDelay задержка между успешной проверкой пароля и входом
const DefaultLoginDelay = 1500 * time.Millisecond
