package domain

// Tab вкладка нижней навигации
type Tab string

const (
	TabResources Tab = "resources"
	TabCalendar  Tab = "calendar"
	TabProfile   Tab = "profile"
)

// Tabs порядок вкладок в нижней навигации
var Tabs = []Tab{TabResources, TabCalendar, TabProfile}

// Label возвращает подпись вкладки
func (t Tab) Label() string {
	switch t {
	case TabResources:
		return "Ресурсы"
	case TabCalendar:
		return "Календарь"
	case TabProfile:
		return "Профиль"
	default:
		return string(t)
	}
}

// ParseTab разбирает вкладку из строки запроса
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownTab
}

// Filter фильтр списка ресурсов по категории
type Filter string

const (
	FilterAll     Filter = "all"
	FilterVenues  Filter = "venues"
	FilterWork    Filter = "work"
	FilterHealth  Filter = "health"
	FilterAuto    Filter = "auto"
	FilterLodging Filter = "lodging"
)

// Filters порядок фильтров в ленте
var Filters = []Filter{FilterAll, FilterVenues, FilterWork, FilterHealth, FilterAuto, FilterLodging}

// Label возвращает подпись фильтра
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "Все"
	case FilterVenues:
		return "Площадки"
	case FilterWork:
		return "Работа"
	case FilterHealth:
		return "Здоровье"
	case FilterAuto:
		return "Авто"
	case FilterLodging:
		return "Жильё"
	default:
		return string(f)
	}
}

// Matches проходит ли категория через фильтр
// Для "Здоровье" и "Авто" категорий нет, они не пропускают ничего
func (f Filter) Matches(c Category) bool {
	switch f {
	case FilterAll:
		return true
	case FilterVenues:
		return c == CategoryVenue
	case FilterWork:
		return c == CategoryWork
	case FilterLodging:
		return c == CategoryLodging
	default:
		return false
	}
}

// ParseFilter разбирает фильтр из строки запроса
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownFilter
}
