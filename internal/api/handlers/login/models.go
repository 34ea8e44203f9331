package login

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
)

// LoginRequest HTTP request model
// Без тела используется текст, уже введенный в поля формы
type LoginRequest struct {
	Login    *string `json:"login,omitempty"`
	Password *string `json:"password,omitempty"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Outcome string                `json:"outcome"` // pending | rejected
	Message string                `json:"message,omitempty"`
	Gate    handlers.GateResponse `json:"gate"`
}
