package handlers

import (
	"time"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

// SessionResponse снимок сессии: форма входа и состояние бронирования
type SessionResponse struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"createdAt"`
	Gate      GateResponse  `json:"gate"`
	State     StateResponse `json:"state"`
}

// GateResponse состояние формы входа
type GateResponse struct {
	Login         string `json:"login"`
	Loading       bool   `json:"loading"`
	Error         bool   `json:"error"`
	Authenticated bool   `json:"authenticated"`
}

// StateResponse состояние бронирования
type StateResponse struct {
	Screen           string            `json:"screen"` // list | detail
	ActiveTab        string            `json:"activeTab"`
	SelectedFilter   string            `json:"selectedFilter"`
	SelectedDate     string            `json:"selectedDate"`
	SelectedTimeSlot *string           `json:"selectedTimeSlot"`
	SelectedResource *ResourceResponse `json:"selectedResource"`
}

// ResourceResponse ресурс
type ResourceResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"categoryLabel"`
	Capacity      string  `json:"capacity,omitempty"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	TimeLeft      string  `json:"timeLeft,omitempty"`
	Price         int     `json:"price"`
	Date          string  `json:"date,omitempty"`
	Time          string  `json:"time,omitempty"`
	Active        bool    `json:"active"`
}

// ConfirmationResponse подтверждение брони
type ConfirmationResponse struct {
	Message     string           `json:"message"`
	Resource    ResourceResponse `json:"resource"`
	TimeSlot    string           `json:"timeSlot"`
	Date        string           `json:"date"`
	ConfirmedAt string           `json:"confirmedAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(sess *registry.Session) *SessionResponse {
	return &SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
		Gate:      FromGateState(sess.Gate.State()),
		State:     FromState(sess.Store.Snapshot()),
	}
}

// FromGateState конвертирует состояние формы входа
func FromGateState(s auth.State) GateResponse {
	return GateResponse{
		Login:         s.Login,
		Loading:       s.Loading,
		Error:         s.Error,
		Authenticated: s.Authenticated,
	}
}

// FromState конвертирует снимок состояния бронирования
func FromState(s session.State) StateResponse {
	resp := StateResponse{
		Screen:           string(s.Screen.Kind()),
		ActiveTab:        string(s.ActiveTab),
		SelectedFilter:   string(s.SelectedFilter),
		SelectedDate:     s.SelectedDate,
		SelectedTimeSlot: s.SelectedTimeSlot,
	}
	if s.SelectedResource != nil {
		res := FromResource(*s.SelectedResource)
		resp.SelectedResource = &res
	}
	return resp
}

// FromResource конвертирует ресурс
func FromResource(r domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID,
		Title:         r.Title,
		Category:      string(r.Category),
		CategoryLabel: r.Category.Label(),
		Capacity:      r.Capacity,
		Location:      r.Location,
		Rating:        r.Rating,
		TimeLeft:      r.TimeLeft,
		Price:         r.Price,
		Date:          r.Date,
		Time:          r.Time,
		Active:        r.Active,
	}
}

// FromResources конвертирует список ресурсов
func FromResources(list []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromResource(r))
	}
	return out
}

// FromConfirmation конвертирует подтверждение брони
func FromConfirmation(c domain.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		Message:     c.Message(),
		Resource:    FromResource(c.Resource),
		TimeSlot:    c.TimeSlot,
		Date:        c.Date,
		ConfirmedAt: c.ConfirmedAt.Format(time.RFC3339),
	}
}
