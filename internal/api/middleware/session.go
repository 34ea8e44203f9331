package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingBrowser/internal/api/handlers"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
)

type contextKey string

const (
	sessionKey contextKey = "session"

	// SessionIDVar имя переменной пути с ID сессии
	SessionIDVar = "sessionId"

	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия не найдена"
	msgNotAuthenticated = "требуется вход"
)

// SessionResolver источник сессий
type SessionResolver interface {
	Get(id string) (*registry.Session, error)
}

// Session находит сессию по {sessionId} и кладет ее в контекст
func Session(resolver SessionResolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := mux.Vars(r)[SessionIDVar]

			sess, err := resolver.Get(id)
			if err != nil {
				switch {
				case errors.Is(err, registry.ErrInvalidSessionID):
					handlers.RespondBadRequest(w, msgInvalidSessionID)
				case errors.Is(err, registry.ErrSessionNotFound):
					handlers.RespondNotFound(w, msgSessionNotFound)
				default:
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireAuthenticated пропускает запрос только после успешного входа
// Должен стоять после Session
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		if !sess.Gate.Authenticated() {
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *registry.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*registry.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*registry.Session)
	return sess, ok && sess != nil
}
