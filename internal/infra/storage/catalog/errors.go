package catalog

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")

	// ErrInvalidRow возвращается, когда строка содержит недопустимые значения
	ErrInvalidRow = errors.New("catalog.repository: invalid row")

	// ErrEmptyCatalog возвращается, когда источник не вернул ни одного ресурса
	ErrEmptyCatalog = errors.New("catalog: no resources loaded")
)
