package get_view

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_view: invalid input data")

	// ErrUnknownTab возвращается, когда в сессии вкладка, для которой нет экрана
	ErrUnknownTab = errors.New("get_view: unknown tab")
)
