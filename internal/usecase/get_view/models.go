package get_view

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

// Request модель запроса на построение экрана
type Request struct {
	Store    SessionStore
	UserName string // логин вошедшего пользователя, показывается в профиле
}

// Response модель текущего экрана
// Заполнено ровно одно из Detail / Resources / Calendar / Profile
type Response struct {
	Screen        session.ScreenKind
	ActiveTab     domain.Tab
	ShowBottomNav bool // в карточке ресурса нижняя навигация скрыта
	Tabs          []TabItem

	Detail    *DetailView
	Resources *ResourcesView
	Calendar  *CalendarView
	Profile   *ProfileView
}

// TabItem пункт нижней навигации
type TabItem struct {
	Tab    domain.Tab
	Label  string
	Active bool
}

// DetailView карточка ресурса с выбором слота
type DetailView struct {
	Resource     domain.Resource
	SelectedDate string
	Slots        []SlotItem
	CanConfirm   bool // слот выбран
}

// SlotItem слот в карточке
type SlotItem struct {
	Time      string
	Available bool
	Selected  bool
}

// ResourcesView лента ресурсов с фильтрами
type ResourcesView struct {
	Filters   []FilterItem
	Resources []domain.Resource
}

// FilterItem фильтр в ленте
type FilterItem struct {
	Filter domain.Filter
	Label  string
	Active bool
}

// CalendarView календарь месяца и брони на выбранную дату
type CalendarView struct {
	Month        string
	Days         []DayItem
	SelectedDate string
	Bookings     []domain.Resource
}

// DayItem день в сетке календаря
type DayItem struct {
	Day        string
	Label      string
	HasBooking bool
	Selected   bool
}

// ProfileView личный кабинет
type ProfileView struct {
	UserName             string
	NotificationsEnabled bool
	ActiveBookings       []domain.Resource
}
