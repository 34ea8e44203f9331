package shell

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

func render(out io.Writer, resp *getView.Response) {
	switch {
	case resp.Detail != nil:
		renderDetail(out, resp.Detail)
	case resp.Resources != nil:
		renderResources(out, resp.Resources)
	case resp.Calendar != nil:
		renderCalendar(out, resp.Calendar)
	case resp.Profile != nil:
		renderProfile(out, resp.Profile)
	}

	if resp.ShowBottomNav {
		renderTabs(out, resp.Tabs)
	}
}

func renderTabs(out io.Writer, tabs []getView.TabItem) {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.Active {
			parts = append(parts, "["+t.Label+"]")
		} else {
			parts = append(parts, " "+t.Label+" ")
		}
	}
	fmt.Fprintf(out, "\n%s\n", strings.Join(parts, " | "))
}

func renderDetail(out io.Writer, d *getView.DetailView) {
	r := d.Resource
	fmt.Fprintf(out, "%s · %s\n", r.Title, r.Category.Label())
	fmt.Fprintf(out, "%s · %s · ★ %.1f · %d ₽\n", r.Location, r.Capacity, r.Rating, r.Price)
	fmt.Fprintf(out, "Дата: %s\n", d.SelectedDate)

	slots := make([]string, 0, len(d.Slots))
	for _, s := range d.Slots {
		switch {
		case s.Selected:
			slots = append(slots, "["+s.Time+"]")
		case !s.Available:
			slots = append(slots, "("+s.Time+")")
		default:
			slots = append(slots, s.Time)
		}
	}
	fmt.Fprintf(out, "Время: %s\n", strings.Join(slots, " "))

	if d.CanConfirm {
		fmt.Fprintln(out, "confirm - подтвердить, back - назад")
	} else {
		fmt.Fprintln(out, "slot <ЧЧ:ММ> - выбрать время, back - назад")
	}
}

func renderResources(out io.Writer, v *getView.ResourcesView) {
	filters := make([]string, 0, len(v.Filters))
	for _, f := range v.Filters {
		if f.Active {
			filters = append(filters, "["+f.Label+"]")
		} else {
			filters = append(filters, f.Label)
		}
	}
	fmt.Fprintln(out, strings.Join(filters, "  "))

	if len(v.Resources) == 0 {
		fmt.Fprintln(out, "Ничего не найдено")
		return
	}
	writeResources(out, v.Resources)
}

func renderCalendar(out io.Writer, v *getView.CalendarView) {
	fmt.Fprintln(out, v.Month)

	var line strings.Builder
	for i, d := range v.Days {
		cell := d.Day
		switch {
		case d.Selected:
			cell = "[" + cell + "]"
		case d.HasBooking:
			cell = cell + "*"
		}
		fmt.Fprintf(&line, "%5s", cell)
		if (i+1)%7 == 0 {
			fmt.Fprintln(out, line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(out, line.String())
	}

	fmt.Fprintf(out, "\n%s\n", v.SelectedDate)
	if len(v.Bookings) == 0 {
		fmt.Fprintln(out, "Нет бронирований")
		return
	}
	writeResources(out, v.Bookings)
}

func renderProfile(out io.Writer, v *getView.ProfileView) {
	fmt.Fprintf(out, "%s\n", v.UserName)
	if v.NotificationsEnabled {
		fmt.Fprintln(out, "Уведомления: вкл")
	} else {
		fmt.Fprintln(out, "Уведомления: выкл")
	}
	fmt.Fprintf(out, "Активные бронирования: %d\n", len(v.ActiveBookings))
	writeResources(out, v.ActiveBookings)
}

func writeResources(out io.Writer, list []domain.Resource) {
	writer := tabwriter.NewWriter(out, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tНАЗВАНИЕ\tКАТЕГОРИЯ\tДАТА\tВРЕМЯ\tЦЕНА")
	for _, r := range list {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.Title, r.Category.Label(), dash(r.Date), dash(r.Time), r.Price)
	}
	_ = writer.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
