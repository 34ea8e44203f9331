package domain

import (
	"regexp"
	"strconv"
)

// MonthLabel сокращенное название отображаемого месяца
const MonthLabel = "янв"

// DaysInMonth число дней в сетке календаря
const DaysInMonth = 31

var dayNumberRe = regexp.MustCompile(`\d+`)

// DayLabel формирует метку даты для номера дня: "15" -> "15 янв"
func DayLabel(day string) string {
	if day == "" {
		return ""
	}
	return day + " " + MonthLabel
}

// DayNumber извлекает номер дня из метки даты: "15 янв" -> "15"
// Возвращает пустую строку, если цифр нет
func DayNumber(label string) string {
	return dayNumberRe.FindString(label)
}

// CalendarDays возвращает номера дней месяца "1".."31"
func CalendarDays() []string {
	days := make([]string, 0, DaysInMonth)
	for d := 1; d <= DaysInMonth; d++ {
		days = append(days, strconv.Itoa(d))
	}
	return days
}
