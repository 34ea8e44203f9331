package get_view

import (
	"context"

	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

type GetViewUseCase interface {
	Execute(ctx context.Context, req *getView.Request) (*getView.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
