package domain

// Category категория бронируемого ресурса
type Category string

const (
	CategoryVenue   Category = "venue"
	CategoryWork    Category = "work"
	CategoryLodging Category = "lodging"
)

// Label возвращает подпись категории для интерфейса
func (c Category) Label() string {
	switch c {
	case CategoryVenue:
		return "Площадка"
	case CategoryWork:
		return "Работа"
	case CategoryLodging:
		return "Жильё"
	default:
		return string(c)
	}
}

// IsValid известна ли категория
func (c Category) IsValid() bool {
	return c == CategoryVenue || c == CategoryWork || c == CategoryLodging
}

// ParseCategory разбирает категорию из строки хранилища
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Resource бронируемый ресурс (площадка, рабочее место, жильё)
// Справочные данные: загружаются при старте и не меняются до конца процесса
type Resource struct {
	ID       string
	Title    string
	Category Category
	Capacity string // "30–50 гостей", "Дневной доступ", ...
	Location string
	Rating   float64
	TimeLeft string // остаток доступности, например "4ч"
	Price    int    // в целых единицах валюты
	Date     string // метка даты брони, "" = нет
	Time     string // диапазон времени брони, "" = нет
	Active   bool
}

// HasDate указана ли у ресурса дата бронирования
func (r Resource) HasDate() bool {
	return r.Date != ""
}

// TimeSlot временной слот для бронирования
type TimeSlot struct {
	Time      string
	Available bool
}
