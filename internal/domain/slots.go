package domain

import (
	"fmt"
	"time"
)

// TimeLayout формат метки слота "ЧЧ:ММ"
const TimeLayout = "15:04"

// GenerateTimeSlots строит сетку слотов с шагом step от first до last включительно
// Все слоты доступны
func GenerateTimeSlots(first, last string, step time.Duration) ([]TimeSlot, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive", ErrInvalidSlotGrid)
	}

	start, err := time.Parse(TimeLayout, first)
	if err != nil {
		return nil, fmt.Errorf("%w: first=%q: %v", ErrInvalidSlotGrid, first, err)
	}
	end, err := time.Parse(TimeLayout, last)
	if err != nil {
		return nil, fmt.Errorf("%w: last=%q: %v", ErrInvalidSlotGrid, last, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidSlotGrid, last, first)
	}

	slots := make([]TimeSlot, 0)
	for current := start; !current.After(end); current = current.Add(step) {
		slots = append(slots, TimeSlot{Time: current.Format(TimeLayout), Available: true})
	}
	return slots, nil
}
