package get_available_days

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

func weekdayEntry(weekday int, start, end string) *domain.WeeklyScheduleEntry {
	return &domain.WeeklyScheduleEntry{
		Weekday:    weekday,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		BreakStart: domain.NoBreakSentinel,
		BreakEnd:   domain.NoBreakSentinel,
	}
}

func fullWeekSchedule() []*domain.WeeklyScheduleEntry {
	entries := make([]*domain.WeeklyScheduleEntry, 0, 6)
	for wd := domain.WeekdayMonday; wd <= domain.WeekdaySaturday; wd++ {
		entries = append(entries, weekdayEntry(wd, "09:00", "18:00"))
	}
	return entries
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
		Year:           2026,
		Month:          time.September,
	}
}

// ── Тесты ──

func TestExecute_OpenMonth(t *testing.T) {
	// Сейчас 10 сентября 2026, расписание пн-сб, записей нет
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: fullWeekSchedule()},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10..30 сентября без воскресений (13, 20, 27)
	assert.Len(t, resp.Days, 18)
	assert.Equal(t, "2026-09-10", resp.Days[0])
	assert.NotContains(t, resp.Days, "2026-09-09")
	assert.NotContains(t, resp.Days, "2026-09-13")
	assert.NotContains(t, resp.Days, "2026-09-20")
	assert.NotContains(t, resp.Days, "2026-09-27")
	assert.Contains(t, resp.Days, "2026-09-30")
}

func TestExecute_HolidayExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	holidays, err := calendar.NewHolidayCalendar([]string{"09-15"})
	require.NoError(t, err)

	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: fullWeekSchedule()},
		defaultCatalog(),
		holidays,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotContains(t, resp.Days, "2026-09-15")
	assert.Contains(t, resp.Days, "2026-09-14")
	assert.Contains(t, resp.Days, "2026-09-16")
}

func TestExecute_FullyBookedDayExcluded(t *testing.T) {
	// Мастер работает только по вторникам один час, 15-е число занято целиком
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	busyStart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)

	uc := setupUseCase(
		&mockAppointmentRepo{appointments: []*domain.Appointment{
			{StartsAt: busyStart, EndsAt: busyStart.Add(time.Hour), Status: domain.StatusScheduled},
		}},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{
			weekdayEntry(2, "10:00", "11:00"),
		}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Вторники сентября 2026: 1, 8, 15, 22, 29
	assert.NotContains(t, resp.Days, "2026-09-15")
	assert.Contains(t, resp.Days, "2026-09-08")
	assert.Contains(t, resp.Days, "2026-09-22")
}

func TestExecute_NoScheduleNoDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_SundayOnlyScheduleIgnored(t *testing.T) {
	// Воскресная строка расписания никогда не даёт дней
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{
			weekdayEntry(domain.WeekdaySunday, "09:00", "18:00"),
		}},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	catalog := defaultCatalog()
	catalog.professionalErr = catalogRepo.ErrProfessionalNotFound

	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, catalog, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	catalog := defaultCatalog()
	catalog.serviceErr = catalogRepo.ErrServiceNotFound

	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, catalog, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc := setupUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{}, defaultCatalog(), nil, now)

	req := validRequest()
	req.Month = 13
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.ProfessionalID = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Year = 1999
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PastMonthAllExcluded(t *testing.T) {
	// Запрос на уже прошедший месяц - пустой список, не ошибка
	now := time.Date(2026, 10, 5, 8, 0, 0, 0, time.Local)
	uc := setupUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{entries: fullWeekSchedule()},
		defaultCatalog(),
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}
