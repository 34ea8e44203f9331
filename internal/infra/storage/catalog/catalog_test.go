package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

type sourceStub struct {
	resources    []domain.Resource
	slots        []domain.TimeSlot
	resourcesErr error
}

func (s *sourceStub) ListResources(context.Context) ([]domain.Resource, error) {
	return s.resources, s.resourcesErr
}

func (s *sourceStub) ListTimeSlots(context.Context) ([]domain.TimeSlot, error) {
	return s.slots, nil
}

func TestLoad_Static(t *testing.T) {
	data, err := Load(context.Background(), NewStatic())
	require.NoError(t, err)

	resources := data.Resources()
	require.Len(t, resources, 6)
	assert.Equal(t, "Loft Noir", resources[0].Title)
	assert.Equal(t, domain.CategoryVenue, resources[0].Category)
	assert.False(t, resources[5].HasDate())

	slots := data.TimeSlots()
	require.Len(t, slots, 7)
	assert.Equal(t, "18:00", slots[0].Time)
	assert.Equal(t, "21:00", slots[6].Time)

	assert.Len(t, data.CalendarDays(), domain.DaysInMonth)
}

func TestData_ReturnsCopies(t *testing.T) {
	data, err := Load(context.Background(), NewStatic())
	require.NoError(t, err)

	first := data.Resources()
	first[0].Title = "mutated"

	again := data.Resources()
	require.Len(t, again, 6)
	assert.Equal(t, "Loft Noir", again[0].Title)
}

func TestStatic_BookingsOnFifteenth(t *testing.T) {
	data, err := Load(context.Background(), NewStatic())
	require.NoError(t, err)

	got := domain.BookingsOn(data.Resources(), "15 янв")
	require.Len(t, got, 1)
	assert.Equal(t, "0", got[0].ID)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), &sourceStub{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	boom := errors.New("boom")
	_, err = Load(context.Background(), &sourceStub{resourcesErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRepositoryQueries(t *testing.T) {
	query, args, err := listResourcesQuery().ToSql()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, title, category, capacity, location, rating, time_left, price, booking_date, booking_time, active FROM resources ORDER BY position, id",
		query)

	query, _, err = listTimeSlotsQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT time_label, available FROM time_slots ORDER BY time_label", query)
}
