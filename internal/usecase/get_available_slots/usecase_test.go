package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// ── Моки ──

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) ListByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.appointments, m.err
}

type mockScheduleRepo struct {
	entries []*domain.WeeklyScheduleEntry
	err     error
}

func (m *mockScheduleRepo) ListByProfessional(_ context.Context, _, _ int64) ([]*domain.WeeklyScheduleEntry, error) {
	return m.entries, m.err
}

type mockCatalogRepo struct {
	professional    *domain.Professional
	professionalErr error
	service         *domain.Service
	serviceErr      error
}

func (m *mockCatalogRepo) GetProfessional(_ context.Context, _, _ int64) (*domain.Professional, error) {
	return m.professional, m.professionalErr
}

func (m *mockCatalogRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return m.service, m.serviceErr
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ── Хелперы ──

// 2026-09-15 - вторник
var tuesday = time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

func tuesdayEntry(start, end string) *domain.WeeklyScheduleEntry {
	return &domain.WeeklyScheduleEntry{
		Weekday:    2,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		BreakStart: domain.NoBreakSentinel,
		BreakEnd:   domain.NoBreakSentinel,
	}
}

func setupUseCase(
	appointments *mockAppointmentRepo,
	schedules *mockScheduleRepo,
	catalog *mockCatalogRepo,
	holidays HolidayCalendar,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, schedules, catalog, holidays, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func defaultCatalog() *mockCatalogRepo {
	return &mockCatalogRepo{
		professional: &domain.Professional{ID: 7, TenantID: 1, Name: "Анна"},
		service:      &domain.Service{ID: 3, TenantID: 1, Name: "Стрижка", DurationMinutes: 60},
	}
}

func validRequest() *Request {
	return &Request{
		TenantID:       1,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           tuesday,
	}
}

// ── Тесты ──

func TestExecute_FreeDay(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "11:00")}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Часовая услуга, шаг 15 минут: 09:00..10:00
	require.Len(t, resp.Slots, 5)
	assert.Equal(t, "09:00", resp.Slots[0].String())
	assert.Equal(t, "10:00", resp.Slots[4].String())
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	busyStart := time.Date(2026, 9, 15, 9, 30, 0, 0, time.Local)

	uc := setupUseCase(
		&mockAppointmentRepo{appointments: []*domain.Appointment{
			{StartsAt: busyStart, EndsAt: busyStart.Add(30 * time.Minute), Status: domain.StatusScheduled},
		}},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "11:00")}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Запись 09:30-10:00 оставляет свободным только старт 10:00
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "10:00", resp.Slots[0].String())
}

func TestExecute_PastDateEmpty(t *testing.T) {
	now := time.Date(2026, 9, 20, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "18:00")}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SundayEmpty(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "18:00")}},
		defaultCatalog(),
		nil,
		now,
	)

	req := validRequest()
	req.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local) // воскресенье

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_HolidayEmpty(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	holidays, err := calendar.NewHolidayCalendar([]string{"09-15"})
	require.NoError(t, err)

	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "18:00")}},
		defaultCatalog(),
		holidays,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoScheduleForWeekdayEmpty(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{}, // расписания нет вовсе
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayPastTimesSkipped(t *testing.T) {
	// Запрос на сегодня в 09:40: кандидаты до 09:40 включительно отсекаются
	now := time.Date(2026, 9, 15, 9, 40, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{tuesdayEntry("09:00", "11:00")}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:45", resp.Slots[0].String())
	assert.Equal(t, "10:00", resp.Slots[1].String())
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	catalog := defaultCatalog()
	catalog.professionalErr = catalogRepo.ErrProfessionalNotFound

	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, catalog, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	catalog := defaultCatalog()
	catalog.serviceErr = catalogRepo.ErrServiceNotFound

	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, catalog, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, defaultCatalog(), nil, now)

	req := validRequest()
	req.Date = time.Time{}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.ServiceID = -1
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
