package domain

// FilterResources возвращает ресурсы, подходящие под фильтр
// Исходный срез не изменяется
func FilterResources(resources []Resource, filter Filter) []Resource {
	result := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if filter.Matches(r.Category) {
			result = append(result, r)
		}
	}
	return result
}

// HasBookingOn есть ли ресурс, дата которого текстуально совпадает с меткой дня
func HasBookingOn(resources []Resource, dayLabel string) bool {
	if dayLabel == "" {
		return false
	}
	for _, r := range resources {
		if r.Date == dayLabel {
			return true
		}
	}
	return false
}

// BookingsOn возвращает ресурсы, у которых дата брони точно совпадает с date
func BookingsOn(resources []Resource, date string) []Resource {
	result := make([]Resource, 0)
	for _, r := range resources {
		if r.Date == date {
			result = append(result, r)
		}
	}
	return result
}

// FindResource ищет ресурс по ID
func FindResource(resources []Resource, id string) (Resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}
