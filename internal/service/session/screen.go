package session

import "github.com/m04kA/SMC-BookingBrowser/internal/domain"

// ScreenKind вид текущего экрана
type ScreenKind string

const (
	ScreenList   ScreenKind = "list"
	ScreenDetail ScreenKind = "detail"
)

// Screen навигационное состояние: либо список на вкладке, либо карточка ресурса
// Карточка помнит вкладку, на которую вернет "назад"
type Screen interface {
	Kind() ScreenKind
	Tab() domain.Tab
}

// ListScreen список на вкладке
type ListScreen struct {
	ActiveTab domain.Tab
}

// Kind implements Screen
func (s ListScreen) Kind() ScreenKind { return ScreenList }

// Tab implements Screen
func (s ListScreen) Tab() domain.Tab { return s.ActiveTab }

// DetailScreen карточка выбранного ресурса
type DetailScreen struct {
	Resource  domain.Resource
	ReturnTab domain.Tab
}

// Kind implements Screen
func (s DetailScreen) Kind() ScreenKind { return ScreenDetail }

// Tab implements Screen
func (s DetailScreen) Tab() domain.Tab { return s.ReturnTab }
