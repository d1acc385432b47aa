package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/pkg/redislock"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// ── Моки ──

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	listErr      error
	created      *domain.Appointment
	createErr    error
}

func (m *mockAppointmentRepo) ListByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.appointments, m.listErr
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *appt
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
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
	customer        *domain.Customer
	customerErr     error
	service         *domain.Service
	serviceErr      error
}

func (m *mockCatalogRepo) GetProfessional(_ context.Context, _, _ int64) (*domain.Professional, error) {
	return m.professional, m.professionalErr
}

func (m *mockCatalogRepo) GetCustomer(_ context.Context, _, _ int64) (*domain.Customer, error) {
	return m.customer, m.customerErr
}

func (m *mockCatalogRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return m.service, m.serviceErr
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeLocker struct {
	lockErr  error
	locked   []string
	unlocked []string
}

func (f *fakeLocker) Lock(_ context.Context, key string, _ time.Duration) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = append(f.locked, key)
	return nil
}

func (f *fakeLocker) Unlock(_ context.Context, key string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
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

func tuesdayEntry(start, end, breakStart, breakEnd string) *domain.WeeklyScheduleEntry {
	bs := domain.NoBreakSentinel
	be := domain.NoBreakSentinel
	if breakStart != "" {
		bs = types.TimeString(breakStart)
		be = types.TimeString(breakEnd)
	}
	return &domain.WeeklyScheduleEntry{
		Weekday:    2,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		BreakStart: bs,
		BreakEnd:   be,
	}
}

type fixture struct {
	uc          *UseCase
	appointment *mockAppointmentRepo
	schedule    *mockScheduleRepo
	catalog     *mockCatalogRepo
	tx          *fakeTxManager
	locker      *fakeLocker
}

func setup(locker SlotLocker) *fixture {
	f := &fixture{
		appointment: &mockAppointmentRepo{},
		schedule: &mockScheduleRepo{entries: []*domain.WeeklyScheduleEntry{
			tuesdayEntry("09:00", "18:00", "13:00", "14:00"),
		}},
		catalog: &mockCatalogRepo{
			professional: &domain.Professional{ID: 7, TenantID: 1, Name: "Анна"},
			customer:     &domain.Customer{ID: 5, TenantID: 1, Name: "Иван"},
			service:      &domain.Service{ID: 3, TenantID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 60},
		},
		tx: &fakeTxManager{},
	}
	if fl, ok := locker.(*fakeLocker); ok {
		f.locker = fl
	}

	f.uc = NewUseCase(f.appointment, f.schedule, f.catalog, f.tx, locker, 10*time.Second, nil, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)}
	return f
}

func validRequest() *Request {
	return &Request{
		TenantID:       1,
		CustomerID:     5,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           tuesday,
		StartTime:      types.TimeString("10:00"),
	}
}

// ── Тесты ──

func TestExecute_Success(t *testing.T) {
	f := setup(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local), resp.StartsAt)
	assert.Equal(t, time.Date(2026, 9, 15, 11, 0, 0, 0, time.Local), resp.EndsAt)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_SlotTakenInsideTransaction(t *testing.T) {
	f := setup(nil)
	busyStart := time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local)
	f.appointment.appointments = []*domain.Appointment{
		{StartsAt: busyStart, EndsAt: busyStart.Add(time.Hour), Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.appointment.created)
}

func TestExecute_TouchingAppointmentIsNotConflict(t *testing.T) {
	f := setup(nil)
	// Существующая запись заканчивается ровно в 10:00 - наш старт
	busyStart := time.Date(2026, 9, 15, 9, 0, 0, 0, time.Local)
	f.appointment.appointments = []*domain.Appointment{
		{StartsAt: busyStart, EndsAt: busyStart.Add(time.Hour), Status: domain.StatusScheduled},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_CanceledAppointmentDoesNotBlock(t *testing.T) {
	f := setup(nil)
	busyStart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)
	f.appointment.appointments = []*domain.Appointment{
		{StartsAt: busyStart, EndsAt: busyStart.Add(time.Hour), Status: domain.StatusCanceled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := setup(nil)

	req := validRequest()
	req.StartTime = types.TimeString("17:30") // конец 18:30 за пределами окна

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_SlotCrossingBreakRejected(t *testing.T) {
	f := setup(nil)

	req := validRequest()
	req.StartTime = types.TimeString("12:30") // конец 13:30 внутри перерыва 13:00-14:00

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_PastDate(t *testing.T) {
	f := setup(nil)

	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SundayRejected(t *testing.T) {
	f := setup(nil)

	req := validRequest()
	req.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayNotBookable)
}

func TestExecute_HolidayRejected(t *testing.T) {
	f := setup(nil)
	holidays, err := calendar.NewHolidayCalendar([]string{"09-15"})
	require.NoError(t, err)
	f.uc.holidays = holidays

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayNotBookable)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	f := setup(nil)
	// Сейчас 15-е, 11:00 - запрошенный слот 10:00 уже прошёл
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 11, 0, 0, 0, time.Local)}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	f := setup(nil)
	f.catalog.professionalErr = catalogRepo.ErrProfessionalNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := setup(nil)
	f.catalog.customerErr = catalogRepo.ErrCustomerNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := setup(nil)
	f.catalog.serviceErr = catalogRepo.ErrServiceNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotesTooLong(t *testing.T) {
	f := setup(nil)

	req := validRequest()
	notes := strings.Repeat("а", domain.MaxNotesLength+1)
	req.Notes = &notes

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_LockAcquiredAndReleased(t *testing.T) {
	locker := &fakeLocker{}
	f := setup(locker)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, locker.locked, 1)
	assert.Equal(t, "appointment:1:7:2026-09-15", locker.locked[0])
	assert.Equal(t, locker.locked, locker.unlocked)
}

func TestExecute_LockBusyMeansConflict(t *testing.T) {
	locker := &fakeLocker{lockErr: redislock.ErrNotAcquired}
	f := setup(locker)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	// До транзакции дело не дошло
	assert.Equal(t, 0, f.tx.calls)
}
