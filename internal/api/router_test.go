package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BookingBrowser/internal/integrations/notifier"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	"github.com/m04kA/SMC-BookingBrowser/pkg/logger"
	"github.com/m04kA/SMC-BookingBrowser/pkg/metrics"
)

type recorder struct {
	mu            sync.Mutex
	confirmations []domain.Confirmation
}

func (r *recorder) Notify(_ context.Context, c domain.Confirmation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.confirmations = append(r.confirmations, c)
}

func (r *recorder) all() []domain.Confirmation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Confirmation(nil), r.confirmations...)
}

type testServer struct {
	srv      *httptest.Server
	rec      *recorder
	metrics  *metrics.Metrics
	sessions *registry.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithDelay(t, 10*time.Millisecond)
}

func newTestServerWithDelay(t *testing.T, delay time.Duration) *testServer {
	t.Helper()

	data, err := catalog.Load(context.Background(), catalog.NewStatic())
	require.NoError(t, err)

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	rec := &recorder{}
	log := logger.NewNop()

	reg := registry.New(
		session.Reference{
			Resources:    data.Resources(),
			TimeSlots:    data.TimeSlots(),
			CalendarDays: data.CalendarDays(),
		},
		auth.Credentials{Login: "admin", Password: "12345"},
		notifier.Fanout{rec, notifier.NewMetricsNotifier(m)},
		log,
		registry.WithGateOptions(auth.WithDelay(delay), auth.WithObserver(m)),
		registry.WithGauge(m),
	)

	srv := httptest.NewServer(NewRouter(Deps{
		Sessions: reg,
		Catalog:  data,
		Logger:   log,
		Metrics:  m,
	}))
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, rec: rec, metrics: m, sessions: reg}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type sessionBody struct {
	ID   string `json:"id"`
	Gate struct {
		Login         string `json:"login"`
		Loading       bool   `json:"loading"`
		Error         bool   `json:"error"`
		Authenticated bool   `json:"authenticated"`
	} `json:"gate"`
	State stateBody `json:"state"`
}

type stateBody struct {
	Screen           string  `json:"screen"`
	ActiveTab        string  `json:"activeTab"`
	SelectedFilter   string  `json:"selectedFilter"`
	SelectedDate     string  `json:"selectedDate"`
	SelectedTimeSlot *string `json:"selectedTimeSlot"`
	SelectedResource *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"selectedResource"`
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	var created sessionBody
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/sessions", nil, &created))

	status := ts.do(t, http.MethodPost, "/api/v1/sessions/"+created.ID+"/login",
		map[string]string{"login": "admin", "password": "12345"}, nil)
	require.Equal(t, http.StatusAccepted, status)

	require.Eventually(t, func() bool {
		var s sessionBody
		ts.do(t, http.MethodGet, "/api/v1/sessions/"+created.ID, nil, &s)
		return s.Gate.Authenticated
	}, time.Second, 10*time.Millisecond)

	return created.ID
}

func TestCreateSession_Defaults(t *testing.T) {
	ts := newTestServer(t)

	var created sessionBody
	status := ts.do(t, http.MethodPost, "/api/v1/sessions", nil, &created)
	require.Equal(t, http.StatusCreated, status)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Gate.Authenticated)
	assert.Equal(t, "list", created.State.Screen)
	assert.Equal(t, "resources", created.State.ActiveTab)
	assert.Equal(t, "all", created.State.SelectedFilter)
	assert.Equal(t, "1 янв", created.State.SelectedDate)
	assert.Nil(t, created.State.SelectedTimeSlot)
	assert.Nil(t, created.State.SelectedResource)
	assert.Equal(t, float64(1), testutil.ToFloat64(ts.metrics.ActiveSessions))
}

func TestLogin_RejectedThenEditClearsError(t *testing.T) {
	ts := newTestServer(t)

	var created sessionBody
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/v1/sessions", nil, &created))
	base := "/api/v1/sessions/" + created.ID

	var rejected struct {
		Outcome string `json:"outcome"`
		Gate    struct {
			Error   bool `json:"error"`
			Loading bool `json:"loading"`
		} `json:"gate"`
	}
	status := ts.do(t, http.MethodPost, base+"/login", map[string]string{"login": "admin", "password": "wrong"}, &rejected)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "rejected", rejected.Outcome)
	assert.True(t, rejected.Gate.Error)
	assert.False(t, rejected.Gate.Loading)

	var gate struct {
		Login string `json:"login"`
		Error bool   `json:"error"`
	}
	status = ts.do(t, http.MethodPatch, base+"/credentials", map[string]string{"password": "1234"}, &gate)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, gate.Error)
	assert.Equal(t, "admin", gate.Login)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, base+"/view", nil, nil))
}

func TestLogin_BusyWhilePending(t *testing.T) {
	ts := newTestServerWithDelay(t, time.Minute)
	sess := ts.sessions.Create()
	base := "/api/v1/sessions/" + sess.ID
	t.Cleanup(func() { _ = ts.sessions.Delete(sess.ID) })

	status := ts.do(t, http.MethodPost, base+"/login", map[string]string{"login": "admin", "password": "12345"}, nil)
	require.Equal(t, http.StatusAccepted, status)

	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, base+"/login", nil, nil))
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPatch, base+"/credentials", map[string]string{"login": "x"}, nil))
}

func TestBookingFlow(t *testing.T) {
	ts := newTestServer(t)
	id := ts.login(t)
	base := "/api/v1/sessions/" + id

	var state stateBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"tab": "calendar"}, &state))
	assert.Equal(t, "calendar", state.ActiveTab)

	require.Equal(t, http.StatusUnprocessableEntity, ts.do(t, http.MethodPost, base+"/confirm", nil, nil))

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, base+"/resource", map[string]string{"resourceId": "0"}, &state))
	assert.Equal(t, "detail", state.Screen)
	assert.Equal(t, "calendar", state.ActiveTab)
	require.NotNil(t, state.SelectedResource)
	assert.Equal(t, "Loft Noir", state.SelectedResource.Title)

	// Без слота подтвердить нельзя, состояние не меняется
	require.Equal(t, http.StatusUnprocessableEntity, ts.do(t, http.MethodPost, base+"/confirm", nil, nil))

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"timeSlot": "18:30"}, &state))
	require.NotNil(t, state.SelectedTimeSlot)
	assert.Equal(t, "18:30", *state.SelectedTimeSlot)

	var view struct {
		Screen        string `json:"screen"`
		ShowBottomNav bool   `json:"showBottomNav"`
		Detail        *struct {
			CanConfirm bool `json:"canConfirm"`
			Slots      []struct {
				Time     string `json:"time"`
				Selected bool   `json:"selected"`
			} `json:"slots"`
		} `json:"detail"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base+"/view", nil, &view))
	assert.Equal(t, "detail", view.Screen)
	assert.False(t, view.ShowBottomNav)
	require.NotNil(t, view.Detail)
	assert.True(t, view.Detail.CanConfirm)
	require.Len(t, view.Detail.Slots, 7)
	assert.True(t, view.Detail.Slots[1].Selected)

	var confirmation struct {
		Message  string `json:"message"`
		TimeSlot string `json:"timeSlot"`
		Date     string `json:"date"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, base+"/confirm", nil, &confirmation))
	assert.Equal(t, "Бронирование подтверждено: Loft Noir на 18:30", confirmation.Message)
	assert.Equal(t, "18:30", confirmation.TimeSlot)
	assert.Equal(t, "1 янв", confirmation.Date)

	var after sessionBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base, nil, &after))
	assert.Equal(t, "list", after.State.Screen)
	assert.Equal(t, "calendar", after.State.ActiveTab)
	assert.Nil(t, after.State.SelectedResource)
	assert.Nil(t, after.State.SelectedTimeSlot)

	confirmations := ts.rec.all()
	require.Len(t, confirmations, 1)
	assert.Equal(t, "0", confirmations[0].Resource.ID)
	assert.Equal(t, float64(1), testutil.ToFloat64(ts.metrics.BookingsConfirmedTotal.WithLabelValues(string(domain.CategoryVenue))))
}

func TestUpdateState_Validation(t *testing.T) {
	ts := newTestServer(t)
	id := ts.login(t)
	base := "/api/v1/sessions/" + id

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"tab": "settings"}, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"filter": "pets"}, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, base+"/state",
		map[string]interface{}{"timeSlot": "18:00", "clearTimeSlot": true}, nil))

	// Невалидный запрос целиком не применяется
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, base+"/state",
		map[string]string{"date": "5 янв", "tab": "settings"}, nil))

	var s sessionBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base, nil, &s))
	assert.Equal(t, "1 янв", s.State.SelectedDate)
	assert.Equal(t, "resources", s.State.ActiveTab)

	var state stateBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, base+"/state",
		map[string]string{"filter": "work", "date": "15 янв"}, &state))
	assert.Equal(t, "work", state.SelectedFilter)
	assert.Equal(t, "15 янв", state.SelectedDate)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPut, base+"/resource", map[string]string{"resourceId": "42"}, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPut, base+"/resource", map[string]string{}, nil))
}

func TestClearResource(t *testing.T) {
	ts := newTestServer(t)
	id := ts.login(t)
	base := "/api/v1/sessions/" + id

	var state stateBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, base+"/resource", nil, &state))
	assert.Equal(t, "list", state.Screen)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, base+"/resource", map[string]string{"resourceId": "3"}, &state))
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"tab": "profile"}, &state))
	assert.Equal(t, "detail", state.Screen)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, base+"/resource", nil, &state))
	assert.Equal(t, "list", state.Screen)
	assert.Equal(t, "profile", state.ActiveTab)
	assert.Nil(t, state.SelectedResource)
}

func TestListResources(t *testing.T) {
	ts := newTestServer(t)

	var list struct {
		Filter    string `json:"filter"`
		Resources []struct {
			ID string `json:"id"`
		} `json:"resources"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/resources", nil, &list))
	assert.Equal(t, "all", list.Filter)
	assert.Len(t, list.Resources, 6)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/resources?filter=work", nil, &list))
	assert.Len(t, list.Resources, 2)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/resources?filter=health", nil, &list))
	assert.Empty(t, list.Resources)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/v1/resources?filter=pets", nil, nil))
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	id := ts.login(t)
	base := "/api/v1/sessions/" + id

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodDelete, "/api/v1/sessions/nope", nil, nil))
	assert.Equal(t, float64(0), testutil.ToFloat64(ts.metrics.ActiveSessions))
}

func TestConfirm_EmptyTimeSlotIsRejected(t *testing.T) {
	ts := newTestServer(t)
	id := ts.login(t)
	base := "/api/v1/sessions/" + id

	var state stateBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, base+"/resource", map[string]string{"resourceId": "0"}, &state))
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, base+"/state", map[string]string{"timeSlot": ""}, &state))
	assert.Nil(t, state.SelectedTimeSlot)

	var view struct {
		Detail *struct {
			CanConfirm bool `json:"canConfirm"`
		} `json:"detail"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base+"/view", nil, &view))
	require.NotNil(t, view.Detail)
	assert.False(t, view.Detail.CanConfirm)

	assert.Equal(t, http.StatusUnprocessableEntity, ts.do(t, http.MethodPost, base+"/confirm", nil, nil))

	var after sessionBody
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, base, nil, &after))
	assert.Equal(t, "detail", after.State.Screen)
	require.NotNil(t, after.State.SelectedResource)
	assert.Equal(t, "0", after.State.SelectedResource.ID)
	assert.Empty(t, ts.rec.all())
}
