package domain

import "errors"

var (
	// ErrUnknownTab возвращается для неизвестной вкладки
	ErrUnknownTab = errors.New("domain: unknown tab")

	// ErrUnknownFilter возвращается для неизвестного фильтра
	ErrUnknownFilter = errors.New("domain: unknown filter")

	// ErrUnknownCategory возвращается для неизвестной категории ресурса
	ErrUnknownCategory = errors.New("domain: unknown category")

	// ErrInvalidSlotGrid возвращается при некорректных границах сетки слотов
	ErrInvalidSlotGrid = errors.New("domain: invalid slot grid")
)
