package auth

import "errors"

var (
	// ErrGateBusy возвращается, когда форма заблокирована на время проверки входа
	ErrGateBusy = errors.New("auth: login in progress")
)
