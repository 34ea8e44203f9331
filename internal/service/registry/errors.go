package registry

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии с таким ID нет
	ErrSessionNotFound = errors.New("registry: session not found")

	// ErrInvalidSessionID возвращается, когда ID сессии не является UUID
	ErrInvalidSessionID = errors.New("registry: invalid session id")
)
