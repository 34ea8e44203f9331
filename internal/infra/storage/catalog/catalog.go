package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// Source источник справочных данных
type Source interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
	ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error)
}

// Data загруженный справочник: неизменяем до конца жизни процесса
// Все методы отдают копии
type Data struct {
	resources    []domain.Resource
	timeSlots    []domain.TimeSlot
	calendarDays []string
}

// Load читает справочник из источника один раз при старте
func Load(ctx context.Context, src Source) (*Data, error) {
	resources, err := src.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	if len(resources) == 0 {
		return nil, ErrEmptyCatalog
	}

	slots, err := src.ListTimeSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("load time slots: %w", err)
	}

	return &Data{
		resources:    resources,
		timeSlots:    slots,
		calendarDays: domain.CalendarDays(),
	}, nil
}

// Resources возвращает копию списка ресурсов
func (d *Data) Resources() []domain.Resource {
	return append([]domain.Resource(nil), d.resources...)
}

// TimeSlots возвращает копию списка слотов
func (d *Data) TimeSlots() []domain.TimeSlot {
	return append([]domain.TimeSlot(nil), d.timeSlots...)
}

// CalendarDays возвращает копию номеров дней
func (d *Data) CalendarDays() []string {
	return append([]string(nil), d.calendarDays...)
}
