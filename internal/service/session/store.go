package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/pkg/ptr"
)

// Store состояние одной сессии бронирования
// Читается через аксессоры и Snapshot, пишется только мутаторами.
// Каждая мутация выполняется целиком под мьютексом, поэтому все наблюдатели
// видят согласованное состояние.
type Store struct {
	mu sync.Mutex

	screen Screen
	filter domain.Filter
	date   string
	slot   *string

	resources    []domain.Resource
	timeSlots    []domain.TimeSlot
	calendarDays []string

	notifier Notifier
	now      func() time.Time
	logger   Logger
}

// NewStore создает сессию с значениями по умолчанию: список на вкладке "Ресурсы",
// фильтр "Все", дата "1 янв", без выбранного слота и ресурса
func NewStore(ref Reference, notifier Notifier, logger Logger) *Store {
	return &Store{
		screen:       ListScreen{ActiveTab: domain.DefaultTab},
		filter:       domain.DefaultFilter,
		date:         domain.DefaultSelectedDate,
		resources:    append([]domain.Resource(nil), ref.Resources...),
		timeSlots:    append([]domain.TimeSlot(nil), ref.TimeSlots...),
		calendarDays: append([]string(nil), ref.CalendarDays...),
		notifier:     notifier,
		now:          time.Now,
		logger:       logger,
	}
}

// Snapshot возвращает копию текущего состояния
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Screen:         s.screen,
		ActiveTab:      s.screen.Tab(),
		SelectedFilter: s.filter,
		SelectedDate:   s.date,
	}
	if s.slot != nil {
		state.SelectedTimeSlot = ptr.Ptr(*s.slot)
	}
	if detail, ok := s.screen.(DetailScreen); ok {
		state.SelectedResource = ptr.Ptr(detail.Resource)
	}
	return state
}

// ActiveTab возвращает активную вкладку (в карточке - вкладку возврата)
func (s *Store) ActiveTab() domain.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Tab()
}

// SelectedResource возвращает выбранный ресурс или nil
func (s *Store) SelectedResource() *domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	if detail, ok := s.screen.(DetailScreen); ok {
		return ptr.Ptr(detail.Resource)
	}
	return nil
}

// Resources возвращает копию справочника ресурсов
func (s *Store) Resources() []domain.Resource {
	return append([]domain.Resource(nil), s.resources...)
}

// TimeSlots возвращает копию списка слотов
func (s *Store) TimeSlots() []domain.TimeSlot {
	return append([]domain.TimeSlot(nil), s.timeSlots...)
}

// CalendarDays возвращает копию номеров дней
func (s *Store) CalendarDays() []string {
	return append([]string(nil), s.calendarDays...)
}

// Filters возвращает доступные фильтры
func (s *Store) Filters() []domain.Filter {
	return append([]domain.Filter(nil), domain.Filters...)
}

// ResourceByID ищет ресурс в справочнике сессии
func (s *Store) ResourceByID(id string) (domain.Resource, error) {
	res, ok := domain.FindResource(s.resources, id)
	if !ok {
		return domain.Resource{}, ErrResourceNotFound
	}
	return res, nil
}

// SetActiveTab переключает вкладку без проверок
// В карточке меняется вкладка, на которую вернет "назад"
func (s *Store) SetActiveTab(tab domain.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setActiveTabLocked(tab)
}

// SetSelectedFilter меняет фильтр; сам список ресурсов не фильтруется и не меняется
func (s *Store) SetSelectedFilter(filter domain.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// SetSelectedDate меняет выбранную дату; наличие дня в календаре не проверяется
func (s *Store) SetSelectedDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
}

// SetSelectedTimeSlot меняет выбранный слот; nil и пустая метка снимают выбор
func (s *Store) SetSelectedTimeSlot(slot *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSlotLocked(slot)
}

// Apply применяет несколько изменений одной мутацией
// Наблюдатели видят либо состояние до, либо после, но не промежуточное
func (s *Store) Apply(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Tab != nil {
		s.setActiveTabLocked(*u.Tab)
	}
	if u.Filter != nil {
		s.filter = *u.Filter
	}
	if u.Date != nil {
		s.date = *u.Date
	}
	if u.ClearTimeSlot {
		s.slot = nil
	} else if u.TimeSlot != nil {
		s.setSlotLocked(u.TimeSlot)
	}
}

// SelectResource открывает карточку ресурса, заменяя предыдущий выбор
// Вкладка и дата не меняются
func (s *Store) SelectResource(resource domain.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen = DetailScreen{Resource: resource, ReturnTab: s.screen.Tab()}
}

// ClearResourceSelection закрывает карточку и возвращает на последнюю вкладку
func (s *Store) ClearResourceSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen = ListScreen{ActiveTab: s.screen.Tab()}
}

// ConfirmBooking подтверждает бронь выбранного ресурса на выбранный слот
//
// Без ресурса или без слота возвращает ErrIncompleteSelection, состояние не меняется.
// При успехе ресурс и слот снимаются одной мутацией, после чего подтверждение
// уходит в канал уведомлений. Бронь нигде не сохраняется.
func (s *Store) ConfirmBooking(ctx context.Context) (domain.Confirmation, error) {
	s.mu.Lock()

	detail, ok := s.screen.(DetailScreen)
	if !ok || ptr.Value(s.slot) == "" {
		slotSelected := ptr.Value(s.slot) != ""
		s.mu.Unlock()
		s.logger.Warn("ConfirmBooking: incomplete selection, resource=%t, slot=%t", ok, slotSelected)
		return domain.Confirmation{}, ErrIncompleteSelection
	}

	confirmation := domain.Confirmation{
		Resource:    detail.Resource,
		TimeSlot:    *s.slot,
		Date:        s.date,
		ConfirmedAt: s.now(),
	}

	s.screen = ListScreen{ActiveTab: detail.ReturnTab}
	s.slot = nil
	s.mu.Unlock()

	s.logger.Info("ConfirmBooking: confirmed resource id=%s, slot=%s, date=%s",
		confirmation.Resource.ID, confirmation.TimeSlot, confirmation.Date)

	if s.notifier != nil {
		s.notifier.Notify(ctx, confirmation)
	}

	return confirmation, nil
}

func (s *Store) setActiveTabLocked(tab domain.Tab) {
	switch screen := s.screen.(type) {
	case DetailScreen:
		screen.ReturnTab = tab
		s.screen = screen
	default:
		s.screen = ListScreen{ActiveTab: tab}
	}
}

func (s *Store) setSlotLocked(slot *string) {
	if ptr.Value(slot) == "" {
		s.slot = nil
		return
	}
	s.slot = ptr.Ptr(*slot)
}
