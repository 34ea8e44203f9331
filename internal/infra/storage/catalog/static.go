package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

const (
	firstSlot = "18:00"
	lastSlot  = "21:00"
	slotStep  = 30 * time.Minute
)

// Static встроенный справочник с демонстрационными данными
type Static struct{}

// NewStatic создает встроенный справочник
func NewStatic() *Static {
	return &Static{}
}

// ListResources возвращает демонстрационные ресурсы
func (s *Static) ListResources(_ context.Context) ([]domain.Resource, error) {
	return []domain.Resource{
		{
			ID: "0", Title: "Loft Noir", Category: domain.CategoryVenue,
			Capacity: "30–50 гостей", Location: "Центр", Rating: 4.8, TimeLeft: "4ч",
			Price: 2900, Date: "15 янв", Time: "19:10–23:10", Active: true,
		},
		{
			ID: "1", Title: "Loft Noir", Category: domain.CategoryVenue,
			Capacity: "30–50 гостей", Location: "Центр", Rating: 4.8, TimeLeft: "4ч",
			Price: 2900, Date: "26 янв", Time: "19:15–23:15", Active: true,
		},
		{
			ID: "2", Title: "Cowork Pulse", Category: domain.CategoryWork,
			Capacity: "Дневной доступ", Location: "Центр", Rating: 4.7, TimeLeft: "8ч",
			Price: 1200, Date: "30 янв", Time: "19:27–23:47", Active: true,
		},
		{
			ID: "3", Title: "Hall Obsidian", Category: domain.CategoryVenue,
			Capacity: "80–120 гостей", Location: "Набережная", Rating: 4.9, TimeLeft: "6ч",
			Price: 5400, Date: "8 янв", Time: "18:00–23:00", Active: true,
		},
		{
			ID: "4", Title: "Noir Suites", Category: domain.CategoryLodging,
			Capacity: "1 ночь", Location: "Набережная", Rating: 4.9, TimeLeft: "2ч",
			Price: 5600, Date: "9 янв", Time: "19:05–23:05", Active: true,
		},
		{
			ID: "5", Title: "Noir 222 Suites", Category: domain.CategoryWork,
			Capacity: "1 ночь", Location: "Набережная", Rating: 4.9, TimeLeft: "2ч",
			Price: 5600, Date: "", Time: "19:00–23:00", Active: true,
		},
	}, nil
}

// ListTimeSlots возвращает получасовые слоты с 18:00 до 21:00
func (s *Static) ListTimeSlots(_ context.Context) ([]domain.TimeSlot, error) {
	return domain.GenerateTimeSlots(firstSlot, lastSlot, slotStep)
}
