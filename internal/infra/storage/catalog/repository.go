package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/pkg/psqlbuilder"
)

// Repository справочник ресурсов в PostgreSQL (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func listResourcesQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"category",
		"capacity",
		"location",
		"rating",
		"time_left",
		"price",
		"booking_date",
		"booking_time",
		"active",
	).
		From("resources").
		OrderBy("position", "id")
}

func listTimeSlotsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"time_label",
		"available",
	).
		From("time_slots").
		OrderBy("time_label")
}

// ListResources возвращает все ресурсы в порядке отображения
func (r *Repository) ListResources(ctx context.Context) ([]domain.Resource, error) {
	query, args, err := listResourcesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		var (
			res                              domain.Resource
			category                         string
			capacity, timeLeft, date, timeRg sql.NullString
		)

		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&category,
			&capacity,
			&res.Location,
			&res.Rating,
			&timeLeft,
			&res.Price,
			&date,
			&timeRg,
			&res.Active,
		); err != nil {
			return nil, fmt.Errorf("%w: ListResources - scan: %v", ErrScanRow, err)
		}

		res.Category, err = domain.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: resource id=%s has category %q", ErrInvalidRow, res.ID, category)
		}
		res.Capacity = capacity.String
		res.TimeLeft = timeLeft.String
		res.Date = date.String
		res.Time = timeRg.String

		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResources - rows iteration: %v", ErrScanRow, err)
	}

	return resources, nil
}

// ListTimeSlots возвращает временные слоты
func (r *Repository) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	query, args, err := listTimeSlotsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.Time, &slot.Available); err != nil {
			return nil, fmt.Errorf("%w: ListTimeSlots - scan: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}
