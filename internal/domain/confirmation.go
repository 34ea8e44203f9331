package domain

import (
	"fmt"
	"time"
)

// Confirmation подтверждение бронирования
// Это уведомление для пользователя, а не запись: бронь нигде не сохраняется
type Confirmation struct {
	Resource    Resource
	TimeSlot    string
	Date        string
	ConfirmedAt time.Time
}

// Message текст уведомления для пользователя
func (c Confirmation) Message() string {
	return fmt.Sprintf("Бронирование подтверждено: %s на %s", c.Resource.Title, c.TimeSlot)
}
