package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
	"github.com/m04kA/SMC-BookingBrowser/pkg/logger"
)

type fixture struct {
	shell *Shell
	store *session.Store
	gate  *auth.Gate
	out   *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	data, err := catalog.Load(context.Background(), catalog.NewStatic())
	require.NoError(t, err)

	log := logger.NewNop()
	store := session.NewStore(session.Reference{
		Resources:    data.Resources(),
		TimeSlots:    data.TimeSlots(),
		CalendarDays: data.CalendarDays(),
	}, nil, log)
	gate := auth.NewGate(auth.Credentials{Login: "admin", Password: "12345"}, log, auth.WithDelay(5*time.Millisecond))
	out := &bytes.Buffer{}

	return &fixture{
		shell: New(gate, store, getView.NewUseCase(log), out),
		store: store,
		gate:  gate,
		out:   out,
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.shell.Login(ctx, "admin", "nope"), ErrNotAuthenticated)
	assert.True(t, f.gate.State().Error)

	require.NoError(t, f.shell.Login(ctx, "admin", "12345"))
	assert.True(t, f.gate.Authenticated())
}

func TestLogin_ContextCancelled(t *testing.T) {
	f := newFixture(t)
	gate := auth.NewGate(auth.Credentials{Login: "admin", Password: "12345"}, logger.NewNop(),
		auth.WithDelay(time.Minute))
	t.Cleanup(gate.Logout)
	f.shell.gate = gate

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, f.shell.Login(ctx, "admin", "12345"), context.Canceled)
}

func TestExec_Navigation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shell.Exec(ctx, "tab calendar")
	require.NoError(t, err)
	assert.Equal(t, domain.TabCalendar, f.store.ActiveTab())

	_, err = f.shell.Exec(ctx, "date 15")
	require.NoError(t, err)
	assert.Equal(t, "15 янв", f.store.Snapshot().SelectedDate)
	assert.Contains(t, f.out.String(), "Loft Noir")

	_, err = f.shell.Exec(ctx, "filter work")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterWork, f.store.Snapshot().SelectedFilter)

	_, err = f.shell.Exec(ctx, "tab settings")
	assert.ErrorIs(t, err, domain.ErrUnknownTab)

	_, err = f.shell.Exec(ctx, "dance")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = f.shell.Exec(ctx, "tab")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestExec_ConfirmFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shell.Exec(ctx, "confirm")
	assert.ErrorIs(t, err, session.ErrIncompleteSelection)

	_, err = f.shell.Exec(ctx, "select 42")
	assert.ErrorIs(t, err, session.ErrResourceNotFound)

	_, err = f.shell.Exec(ctx, "select 3")
	require.NoError(t, err)
	assert.True(t, f.store.Snapshot().IsDetail())

	_, err = f.shell.Exec(ctx, "slot 19:00")
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "[19:00]")

	f.out.Reset()
	_, err = f.shell.Exec(ctx, "confirm")
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Бронирование подтверждено: Hall Obsidian на 19:00")

	snap := f.store.Snapshot()
	assert.False(t, snap.IsDetail())
	assert.Nil(t, snap.SelectedTimeSlot)
}

func TestExec_SlotClearAndBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shell.Exec(ctx, "select 0")
	require.NoError(t, err)
	_, err = f.shell.Exec(ctx, "slot 18:00")
	require.NoError(t, err)
	_, err = f.shell.Exec(ctx, "slot -")
	require.NoError(t, err)
	assert.Nil(t, f.store.Snapshot().SelectedTimeSlot)

	_, err = f.shell.Exec(ctx, "back")
	require.NoError(t, err)
	assert.Nil(t, f.store.SelectedResource())
}

func TestRun_QuitsAndReportsErrors(t *testing.T) {
	f := newFixture(t)

	in := strings.NewReader("help\nconfirm\ntab profile\nquit\ntab calendar\n")
	require.NoError(t, f.shell.Run(context.Background(), in))

	out := f.out.String()
	assert.Contains(t, out, "Команды:")
	assert.Contains(t, out, "Ошибка: выберите ресурс и время")
	assert.Contains(t, out, "Активные бронирования: 5")
	// Команды после quit не выполняются
	assert.Equal(t, domain.TabProfile, f.store.ActiveTab())
}

func TestRun_EOF(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shell.Run(context.Background(), strings.NewReader("tab calendar")))
	assert.Equal(t, domain.TabCalendar, f.store.ActiveTab())
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "15 янв", dateLabel([]string{"15"}))
	assert.Equal(t, "15 янв", dateLabel([]string{"15", "янв"}))
	assert.Equal(t, "завтра", dateLabel([]string{"завтра"}))
}
