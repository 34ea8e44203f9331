package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	"github.com/m04kA/SMC-BookingBrowser/pkg/logger"
)

type observation struct {
	method string
	route  string
	status int
}

type observerStub struct {
	calls []observation
}

func (o *observerStub) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.calls = append(o.calls, observation{method: method, route: route, status: status})
}

func newRegistry() *registry.Registry {
	ref := session.Reference{
		Resources:    []domain.Resource{{ID: "1", Title: "Loft", Category: domain.CategoryVenue}},
		TimeSlots:    []domain.TimeSlot{{Time: "18:00", Available: true}},
		CalendarDays: domain.CalendarDays(),
	}
	return registry.New(
		ref,
		auth.Credentials{Login: "admin", Password: "12345"},
		nil,
		logger.NewNop(),
		registry.WithGateOptions(auth.WithDelay(time.Millisecond)),
	)
}

func newRouter(reg *registry.Registry) *mux.Router {
	r := mux.NewRouter()
	s := r.PathPrefix("/sessions/{sessionId}").Subrouter()
	s.Use(Session(reg))
	s.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(sess.ID))
	}).Methods(http.MethodGet)

	p := s.PathPrefix("").Subrouter()
	p.Use(RequireAuthenticated)
	p.HandleFunc("/secret", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)
	return r
}

func TestSession(t *testing.T) {
	reg := newRegistry()
	sess := reg.Create()
	router := newRouter(reg)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, sess.ID, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/6f1c1f6e-3c55-4a39-a0a4-0d9e1c1f0b11", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	reg := newRegistry()
	sess := reg.Create()
	router := newRouter(reg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID+"/secret", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	require.Equal(t, auth.OutcomePending, sess.Gate.AttemptLogin("admin", "12345"))
	require.Eventually(t, sess.Gate.Authenticated, time.Second, 5*time.Millisecond)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID+"/secret", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAuthenticated_NoSession(t *testing.T) {
	h := RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &observerStub{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/sessions/{sessionId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).Methods(http.MethodPost)
	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/sessions/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observation{method: http.MethodPost, route: "/sessions/{sessionId}", status: http.StatusAccepted}, obs.calls[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "/ping", status: http.StatusOK}, obs.calls[1])
}
