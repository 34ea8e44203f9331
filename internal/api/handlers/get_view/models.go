package get_view

import (
	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

// ViewResponse HTTP response model
type ViewResponse struct {
	Screen        string             `json:"screen"`
	ActiveTab     string             `json:"activeTab"`
	ShowBottomNav bool               `json:"showBottomNav"`
	Tabs          []TabResponse      `json:"tabs"`
	Detail        *DetailResponse    `json:"detail,omitempty"`
	Resources     *ResourcesResponse `json:"resources,omitempty"`
	Calendar      *CalendarResponse  `json:"calendar,omitempty"`
	Profile       *ProfileResponse   `json:"profile,omitempty"`
}

type TabResponse struct {
	Tab    string `json:"tab"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type DetailResponse struct {
	Resource     handlers.ResourceResponse `json:"resource"`
	SelectedDate string                    `json:"selectedDate"`
	Slots        []SlotResponse            `json:"slots"`
	CanConfirm   bool                      `json:"canConfirm"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

type ResourcesResponse struct {
	Filters   []FilterResponse            `json:"filters"`
	Resources []handlers.ResourceResponse `json:"resources"`
}

type FilterResponse struct {
	Filter string `json:"filter"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type CalendarResponse struct {
	Month        string                      `json:"month"`
	Days         []DayResponse               `json:"days"`
	SelectedDate string                      `json:"selectedDate"`
	Bookings     []handlers.ResourceResponse `json:"bookings"`
}

type DayResponse struct {
	Day        string `json:"day"`
	Label      string `json:"label"`
	HasBooking bool   `json:"hasBooking"`
	Selected   bool   `json:"selected"`
}

type ProfileResponse struct {
	UserName             string                      `json:"userName"`
	NotificationsEnabled bool                        `json:"notificationsEnabled"`
	ActiveBookings       []handlers.ResourceResponse `json:"activeBookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getView.Response) *ViewResponse {
	out := &ViewResponse{
		Screen:        string(resp.Screen),
		ActiveTab:     string(resp.ActiveTab),
		ShowBottomNav: resp.ShowBottomNav,
		Tabs:          make([]TabResponse, 0, len(resp.Tabs)),
	}
	for _, t := range resp.Tabs {
		out.Tabs = append(out.Tabs, TabResponse{Tab: string(t.Tab), Label: t.Label, Active: t.Active})
	}

	if d := resp.Detail; d != nil {
		detail := &DetailResponse{
			Resource:     handlers.FromResource(d.Resource),
			SelectedDate: d.SelectedDate,
			Slots:        make([]SlotResponse, 0, len(d.Slots)),
			CanConfirm:   d.CanConfirm,
		}
		for _, s := range d.Slots {
			detail.Slots = append(detail.Slots, SlotResponse{Time: s.Time, Available: s.Available, Selected: s.Selected})
		}
		out.Detail = detail
	}

	if rv := resp.Resources; rv != nil {
		view := &ResourcesResponse{
			Filters:   make([]FilterResponse, 0, len(rv.Filters)),
			Resources: handlers.FromResources(rv.Resources),
		}
		for _, f := range rv.Filters {
			view.Filters = append(view.Filters, FilterResponse{Filter: string(f.Filter), Label: f.Label, Active: f.Active})
		}
		out.Resources = view
	}

	if c := resp.Calendar; c != nil {
		view := &CalendarResponse{
			Month:        c.Month,
			Days:         make([]DayResponse, 0, len(c.Days)),
			SelectedDate: c.SelectedDate,
			Bookings:     handlers.FromResources(c.Bookings),
		}
		for _, d := range c.Days {
			view.Days = append(view.Days, DayResponse{Day: d.Day, Label: d.Label, HasBooking: d.HasBooking, Selected: d.Selected})
		}
		out.Calendar = view
	}

	if p := resp.Profile; p != nil {
		out.Profile = &ProfileResponse{
			UserName:             p.UserName,
			NotificationsEnabled: p.NotificationsEnabled,
			ActiveBookings:       handlers.FromResources(p.ActiveBookings),
		}
	}

	return out
}
