package update_state

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

// UpdateStateRequest HTTP request model
// Отсутствующее поле не меняется
type UpdateStateRequest struct {
	Tab           *string `json:"tab,omitempty"`
	Filter        *string `json:"filter,omitempty"`
	Date          *string `json:"date,omitempty"`
	TimeSlot      *string `json:"timeSlot,omitempty"`
	ClearTimeSlot bool    `json:"clearTimeSlot,omitempty"`
}

// ToUpdate проверяет весь запрос до применения, чтобы не менять состояние частично
func (r *UpdateStateRequest) ToUpdate() (session.Update, error) {
	u := session.Update{
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		ClearTimeSlot: r.ClearTimeSlot,
	}

	if r.Tab != nil {
		tab, err := domain.ParseTab(*r.Tab)
		if err != nil {
			return session.Update{}, err
		}
		u.Tab = &tab
	}

	if r.Filter != nil {
		filter, err := domain.ParseFilter(*r.Filter)
		if err != nil {
			return session.Update{}, err
		}
		u.Filter = &filter
	}

	return u, nil
}
