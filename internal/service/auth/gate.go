package auth

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

// Option настройка Gate
type Option func(*Gate)

// WithDelay меняет задержку входа (только для тестов и локального shell)
func WithDelay(d time.Duration) Option {
	return func(g *Gate) {
		if d >= 0 {
			g.delay = d
		}
	}
}

// WithObserver подключает наблюдателя за исходами входа
func WithObserver(o Observer) Option {
	return func(g *Gate) {
		g.observer = o
	}
}

// Gate проверка входа перед доступом к приложению
//
// Совпадение с ожидаемой парой: ошибка сбрасывается, выставляется loading,
// через фиксированную задержку authenticated = true и loading = false.
// Несовпадение: синхронно выставляется флаг ошибки, loading не трогается.
// Единственный канал ошибки - флаг, без различия "нет пользователя" / "неверный пароль".
type Gate struct {
	mu       sync.Mutex
	expected Credentials
	delay    time.Duration
	observer Observer
	logger   Logger

	login         string
	password      string
	loading       bool
	failed        bool
	authenticated bool

	// attempt растет при каждой попытке и выходе; по нему отбрасываются устаревшие таймеры
	attempt uint64
	timer   *time.Timer
	done    chan struct{}
}

// NewGate создает форму входа с ожидаемой парой из конфигурации
func NewGate(expected Credentials, logger Logger, opts ...Option) *Gate {
	g := &Gate{
		expected: expected,
		delay:    domain.DefaultLoginDelay,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AttemptLogin сравнивает пару с ожидаемой
// Предыдущая незавершенная попытка отменяется, так что два завершения не гоняются
func (g *Gate) AttemptLogin(login, password string) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancelPendingLocked()
	g.attempt++
	g.login = login
	g.password = password

	if login != g.expected.Login || password != g.expected.Password {
		g.failed = true
		g.observe(OutcomeRejected)
		g.logger.Warn("AttemptLogin: credentials rejected, attempt=%d", g.attempt)
		return OutcomeRejected
	}

	g.failed = false
	g.loading = true

	id := g.attempt
	g.done = make(chan struct{})
	g.timer = time.AfterFunc(g.delay, func() {
		g.complete(id)
	})

	g.observe(OutcomePending)
	g.logger.Info("AttemptLogin: credentials accepted, completing in %s, attempt=%d", g.delay, id)
	return OutcomePending
}

// Submit пытается войти с текущим текстом полей формы
// Пока идет проверка, кнопка заблокирована
func (g *Gate) Submit() (Outcome, error) {
	g.mu.Lock()
	if g.loading {
		g.mu.Unlock()
		return "", ErrGateBusy
	}
	login, password := g.login, g.password
	g.mu.Unlock()

	return g.AttemptLogin(login, password), nil
}

// SetLogin обновляет текст поля логина и снимает флаг ошибки
func (g *Gate) SetLogin(value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loading {
		return ErrGateBusy
	}
	g.login = value
	g.failed = false
	return nil
}

// SetPassword обновляет текст поля пароля и снимает флаг ошибки
func (g *Gate) SetPassword(value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loading {
		return ErrGateBusy
	}
	g.password = value
	g.failed = false
	return nil
}

// Logout отменяет незавершенную попытку и возвращает форму в исходное состояние
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancelPendingLocked()
	g.attempt++
	g.login = ""
	g.password = ""
	g.failed = false
	g.authenticated = false
	g.logger.Info("Logout: gate reset, attempt=%d", g.attempt)
}

// Wait блокируется до завершения попытки и возвращает итоговый authenticated
// Если попытку сменила новая, ждет уже ее; отказ или выход дают false
func (g *Gate) Wait(ctx context.Context) (bool, error) {
	for {
		g.mu.Lock()
		done := g.done
		authenticated := g.authenticated
		g.mu.Unlock()

		if done == nil {
			return authenticated, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-done:
		}
	}
}

// Authenticated сообщает, завершился ли успешный вход
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// State возвращает снимок состояния формы
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{
		Login:         g.login,
		Loading:       g.loading,
		Error:         g.failed,
		Authenticated: g.authenticated,
	}
}

func (g *Gate) complete(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Попытка отменена новой попыткой или выходом
	if id != g.attempt || !g.loading {
		return
	}

	g.authenticated = true
	g.loading = false
	g.timer = nil
	if g.done != nil {
		close(g.done)
		g.done = nil
	}
	g.logger.Info("AttemptLogin: authenticated, attempt=%d", id)
}

func (g *Gate) cancelPendingLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	if g.done != nil {
		close(g.done)
		g.done = nil
	}
	g.loading = false
}

func (g *Gate) observe(outcome Outcome) {
	if g.observer != nil {
		g.observer.ObserveLogin(string(outcome))
	}
}
