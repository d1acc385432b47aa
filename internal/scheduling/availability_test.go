package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

func TestHasFreeSlot_FindsGap(t *testing.T) {
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("10:00", "12:00", "", ""),
	}
	appointments := []*domain.Appointment{
		makeAppointment(at(10, 0), at(11, 0), domain.StatusScheduled),
	}

	free, err := HasFreeSlot(testDate, entries, 60, appointments, farPast)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestHasFreeSlot_FullyBooked(t *testing.T) {
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("10:00", "12:00", "", ""),
	}
	appointments := []*domain.Appointment{
		makeAppointment(at(10, 0), at(11, 0), domain.StatusScheduled),
		makeAppointment(at(11, 0), at(12, 0), domain.StatusScheduled),
	}

	free, err := HasFreeSlot(testDate, entries, 60, appointments, farPast)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestHasFreeSlot_CanceledFreesTime(t *testing.T) {
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("10:00", "11:00", "", ""),
	}
	appointments := []*domain.Appointment{
		makeAppointment(at(10, 0), at(11, 0), domain.StatusCanceled),
	}

	free, err := HasFreeSlot(testDate, entries, 60, appointments, farPast)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestHasFreeSlot_NoEntries(t *testing.T) {
	free, err := HasFreeSlot(testDate, nil, 60, nil, farPast)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestFreeStartTimes_ExcludesConflicts(t *testing.T) {
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("09:00", "11:00", "", ""),
	}
	appointments := []*domain.Appointment{
		makeAppointment(at(9, 30), at(10, 0), domain.StatusScheduled),
	}

	result, err := FreeStartTimes(testDate, entries, 60, appointments, farPast)
	require.NoError(t, err)

	// Из кандидатов 09:00..10:00 только 10:00 не пересекается с записью
	// (часовая услуга с 10:00 начинается ровно на конце записи)
	require.Len(t, result, 1)
	assert.Equal(t, "10:00", result[0].String())
}

func TestFreeStartTimes_MultipleWindowsSorted(t *testing.T) {
	// Окна переданы в обратном порядке - итог всё равно отсортирован
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("14:00", "16:00", "", ""),
		makeEntry("09:00", "10:00", "", ""),
	}

	result, err := FreeStartTimes(testDate, entries, 60, nil, farPast)
	require.NoError(t, err)

	require.Len(t, result, 6)
	assert.Equal(t, "09:00", result[0].String())
	assert.Equal(t, "14:00", result[1].String())
	assert.Equal(t, "15:00", result[5].String())

	for i := 1; i < len(result); i++ {
		assert.True(t, result[i-1].IsBefore(result[i]))
	}
}

func TestFreeStartTimes_EmptyIsNotNil(t *testing.T) {
	entries := []*domain.WeeklyScheduleEntry{
		makeEntry("10:00", "11:00", "", ""),
	}
	appointments := []*domain.Appointment{
		makeAppointment(at(10, 0), at(11, 0), domain.StatusScheduled),
	}

	result, err := FreeStartTimes(testDate, entries, 60, appointments, farPast)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
