package session

import "errors"

var (
	// ErrIncompleteSelection возвращается при подтверждении без выбранного ресурса или слота
	ErrIncompleteSelection = errors.New("session: resource and time slot must both be selected")

	// ErrResourceNotFound возвращается, когда ресурса с таким ID нет в справочнике
	ErrResourceNotFound = errors.New("session: resource not found")
)
