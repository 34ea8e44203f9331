package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
)

// Session одна вкладка браузера: форма входа и состояние бронирования
type Session struct {
	ID        string
	Gate      *auth.Gate
	Store     *session.Store
	CreatedAt time.Time

	lastSeen time.Time // под Registry.mu
}

// Option настройка Registry
type Option func(*Registry)

// WithGateOptions передает опции в каждую создаваемую форму входа
func WithGateOptions(opts ...auth.Option) Option {
	return func(r *Registry) {
		r.gateOpts = append(r.gateOpts, opts...)
	}
}

// WithIdleTTL включает вытеснение сессий, к которым не обращались дольше ttl
func WithIdleTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.idleTTL = ttl
	}
}

// WithGauge подключает метрику числа сессий
func WithGauge(g Gauge) Option {
	return func(r *Registry) {
		r.gauge = g
	}
}

// Registry хранит сессии процесса в памяти
// Сессии не переживают перезапуск
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ref         session.Reference
	credentials auth.Credentials
	notifier    session.Notifier
	gateOpts    []auth.Option
	gauge       Gauge
	idleTTL     time.Duration
	now         func() time.Time
	logger      Logger
}

// New создает реестр сессий
func New(
	ref session.Reference,
	credentials auth.Credentials,
	notifier session.Notifier,
	logger Logger,
	opts ...Option,
) *Registry {
	r := &Registry{
		sessions:    make(map[string]*Session),
		ref:         ref,
		credentials: credentials,
		notifier:    notifier,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create создает новую сессию со значениями по умолчанию
func (r *Registry) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Gate:      auth.NewGate(r.credentials, r.logger, r.gateOpts...),
		Store:     session.NewStore(r.ref, r.notifier, r.logger),
		CreatedAt: r.now(),
	}
	sess.lastSeen = sess.CreatedAt

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	n := len(r.sessions)
	r.mu.Unlock()

	r.setGauge(n)
	r.logger.Info("Create: session id=%s created, active=%d", sess.ID, n)
	return sess
}

// Get возвращает сессию по ID
func (r *Registry) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionID, err)
	}

	r.mu.Lock()
	sess, ok := r.sessions[id]
	if ok {
		sess.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete завершает сессию: отменяет незавершенный вход и удаляет состояние
func (r *Registry) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSessionID, err)
	}

	r.mu.Lock()
	sess, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	sess.Gate.Logout()
	r.setGauge(n)
	r.logger.Info("Delete: session id=%s deleted, active=%d", id, n)
	return nil
}

// Len возвращает число живых сессий
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep удаляет сессии, простаивающие дольше idle TTL, и возвращает их число
// Без WithIdleTTL ничего не делает
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}
	deadline := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	expired := make([]*Session, 0)
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(deadline) {
			expired = append(expired, sess)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if len(expired) == 0 {
		return 0
	}

	for _, sess := range expired {
		sess.Gate.Logout()
	}
	r.setGauge(n)
	r.logger.Info("Sweep: expired %d idle sessions, active=%d", len(expired), n)
	return len(expired)
}

// RunSweeper вызывает Sweep каждые interval до отмены контекста
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) setGauge(n int) {
	if r.gauge != nil {
		r.gauge.SetActiveSessions(n)
	}
}
