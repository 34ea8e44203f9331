package get_view

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	"github.com/m04kA/SMC-BookingBrowser/pkg/ptr"
)

// UseCase use case построения текущего экрана сессии
// Все производные данные (фильтрация, отметки в календаре) считаются здесь и нигде не хранятся
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute строит модель экрана по снимку состояния
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil || req.Store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidInput)
	}

	state := req.Store.Snapshot()

	resp := &Response{
		Screen:        state.Screen.Kind(),
		ActiveTab:     state.ActiveTab,
		ShowBottomNav: !state.IsDetail(),
		Tabs:          buildTabs(state.ActiveTab),
	}

	if detail, ok := state.Screen.(session.DetailScreen); ok {
		resp.Detail = buildDetail(detail.Resource, state, req.Store.TimeSlots())
		return resp, nil
	}

	resources := req.Store.Resources()

	switch state.ActiveTab {
	case domain.TabResources:
		resp.Resources = buildResources(resources, state.SelectedFilter, req.Store.Filters())
	case domain.TabCalendar:
		resp.Calendar = buildCalendar(resources, state.SelectedDate, req.Store.CalendarDays())
	case domain.TabProfile:
		resp.Profile = buildProfile(resources, req.UserName)
	default:
		uc.logger.Warn("GetView: unknown tab=%s", state.ActiveTab)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, state.ActiveTab)
	}

	return resp, nil
}

func buildTabs(active domain.Tab) []TabItem {
	tabs := make([]TabItem, 0, len(domain.Tabs))
	for _, t := range domain.Tabs {
		tabs = append(tabs, TabItem{Tab: t, Label: t.Label(), Active: t == active})
	}
	return tabs
}

func buildDetail(res domain.Resource, state session.State, slots []domain.TimeSlot) *DetailView {
	selected := ptr.Value(state.SelectedTimeSlot)

	items := make([]SlotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, SlotItem{
			Time:      s.Time,
			Available: s.Available,
			Selected:  selected != "" && s.Time == selected,
		})
	}

	return &DetailView{
		Resource:     res,
		SelectedDate: state.SelectedDate,
		Slots:        items,
		CanConfirm:   selected != "",
	}
}

func buildResources(resources []domain.Resource, active domain.Filter, filters []domain.Filter) *ResourcesView {
	items := make([]FilterItem, 0, len(filters))
	for _, f := range filters {
		items = append(items, FilterItem{Filter: f, Label: f.Label(), Active: f == active})
	}

	return &ResourcesView{
		Filters:   items,
		Resources: domain.FilterResources(resources, active),
	}
}

func buildCalendar(resources []domain.Resource, selectedDate string, days []string) *CalendarView {
	selectedDay := domain.DayNumber(selectedDate)

	items := make([]DayItem, 0, len(days))
	for _, d := range days {
		label := domain.DayLabel(d)
		items = append(items, DayItem{
			Day:        d,
			Label:      label,
			HasBooking: domain.HasBookingOn(resources, label),
			Selected:   d == selectedDay,
		})
	}

	return &CalendarView{
		Month:        domain.MonthLabel,
		Days:         items,
		SelectedDate: selectedDate,
		Bookings:     domain.BookingsOn(resources, selectedDate),
	}
}

func buildProfile(resources []domain.Resource, userName string) *ProfileView {
	active := make([]domain.Resource, 0)
	for _, r := range resources {
		if r.Active && r.HasDate() {
			active = append(active, r)
		}
	}

	return &ProfileView{
		UserName:             userName,
		NotificationsEnabled: true,
		ActiveBookings:       active,
	}
}
