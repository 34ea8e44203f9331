package session

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// Reference справочные списки, которыми сессия инициализируется при создании
type Reference struct {
	Resources    []domain.Resource
	TimeSlots    []domain.TimeSlot
	CalendarDays []string
}

// State согласованный снимок состояния сессии
type State struct {
	Screen           Screen
	ActiveTab        domain.Tab
	SelectedFilter   domain.Filter
	SelectedDate     string
	SelectedTimeSlot *string
	SelectedResource *domain.Resource
}

// IsDetail открыта ли карточка ресурса
func (s State) IsDetail() bool {
	return s.Screen.Kind() == ScreenDetail
}

// Update набор изменений для Store.Apply
// nil поле не меняется
type Update struct {
	Tab           *domain.Tab
	Filter        *domain.Filter
	Date          *string
	TimeSlot      *string
	ClearTimeSlot bool // приоритетнее TimeSlot
}
