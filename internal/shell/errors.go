package shell

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда вход не завершился успехом
	ErrNotAuthenticated = errors.New("shell: not authenticated")

	// ErrUnknownCommand возвращается для неизвестной команды
	ErrUnknownCommand = errors.New("shell: unknown command")

	// ErrUsage возвращается при неверных аргументах команды
	ErrUsage = errors.New("shell: wrong arguments")
)
