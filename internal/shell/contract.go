package shell

import (
	"context"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

// Gate форма входа
type Gate interface {
	AttemptLogin(login, password string) auth.Outcome
	Wait(ctx context.Context) (bool, error)
	State() auth.State
}

// Store состояние бронирования сессии
type Store interface {
	getView.SessionStore

	ResourceByID(id string) (domain.Resource, error)
	SetActiveTab(tab domain.Tab)
	SetSelectedFilter(filter domain.Filter)
	SetSelectedDate(date string)
	SetSelectedTimeSlot(slot *string)
	SelectResource(resource domain.Resource)
	ClearResourceSelection()
	ConfirmBooking(ctx context.Context) (domain.Confirmation, error)
}

// ViewBuilder строит модель текущего экрана
type ViewBuilder interface {
	Execute(ctx context.Context, req *getView.Request) (*getView.Response, error)
}

var _ Store = (*session.Store)(nil)
