package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	appointmentRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/appointment"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments/models"
	"github.com/levkurapov/salon-booking-service/pkg/ptr"
)

// ── Моки ──

type mockAppointmentRepo struct {
	byID         *domain.Appointment
	byIDErr      error
	list         []*domain.Appointment
	listErr      error
	cancelErr    error
	cancelCalled bool
	lastStatus   domain.AppointmentStatus
	statusErr    error
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return m.byID, m.byIDErr
}

func (m *mockAppointmentRepo) ListByCustomer(_ context.Context, _, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return m.list, m.listErr
}

func (m *mockAppointmentRepo) ListByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.list, m.listErr
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, _, _ int64, _ string) error {
	m.cancelCalled = m.cancelErr == nil
	return m.cancelErr
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, _, _ int64, status domain.AppointmentStatus) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.lastStatus = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ── Хелперы ──

func scheduledAppointment() *domain.Appointment {
	starts := time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)
	return &domain.Appointment{
		ID:             42,
		TenantID:       1,
		ProfessionalID: 7,
		ServiceID:      3,
		CustomerID:     5,
		StartsAt:       starts,
		EndsAt:         starts.Add(time.Hour),
		Status:         domain.StatusScheduled,
		ServiceName:    "Стрижка",
		ServicePrice:   1500,
	}
}

// ── Тесты ──

func TestGetByID_Success(t *testing.T) {
	repo := &mockAppointmentRepo{byID: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestGetByID_ForeignAppointmentDenied(t *testing.T) {
	repo := &mockAppointmentRepo{byID: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 42, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{byIDErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 42, 5)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &mockAppointmentRepo{byID: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		TenantID:   1,
		CustomerID: 5,
		Reason:     "не смогу прийти",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelCalled)
}

func TestCancel_ForeignAppointmentDenied(t *testing.T) {
	repo := &mockAppointmentRepo{byID: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		TenantID:   1,
		CustomerID: 999,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelCalled)
}

func TestCancel_AlreadyDone(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusDone
	repo := &mockAppointmentRepo{byID: appt}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		TenantID:   1,
		CustomerID: 5,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetCustomerAppointments_InvalidStatus(t *testing.T) {
	repo := &mockAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		TenantID:   1,
		CustomerID: 5,
		Status:     ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerAppointments_Success(t *testing.T) {
	repo := &mockAppointmentRepo{list: []*domain.Appointment{scheduledAppointment()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		TenantID:   1,
		CustomerID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestMarkDoneAndNoShow(t *testing.T) {
	repo := &mockAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkDone(context.Background(), 1, 42))
	assert.Equal(t, domain.StatusDone, repo.lastStatus)

	require.NoError(t, svc.MarkNoShow(context.Background(), 1, 42))
	assert.Equal(t, domain.StatusNoShow, repo.lastStatus)
}

func TestMarkDone_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{statusErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.MarkDone(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
