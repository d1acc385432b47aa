package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	appointmentRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/appointment"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями:
// просмотр, история, отмена, отметки выполнения
// Создание записи - отдельный use case со своей транзакционной логикой
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, tenantID, id, customerID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for customer=%d", id, customerID)

	appt, err := s.appointmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to appointment id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d", req.CustomerID)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.appointmentRepo.ListByCustomer(ctx, req.TenantID, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: fetched %d appointments for customer=%d", len(list), req.CustomerID)
	return models.FromDomainAppointmentList(list), nil
}

// GetProfessionalAppointments получает записи мастера с фильтрацией
// по периоду и статусу - календарь мастера на стороне салона
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProfessionalAppointments: fetching appointments for professional=%d", req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.ListByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: fetched %d appointments for professional=%d", len(list), req.ProfessionalID)
	return models.FromDomainAppointmentList(list), nil
}

// Cancel отменяет запись по инициативе клиента
// Отменить можно только свою запись и только в статусе scheduled
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by customer=%d", appointmentID, req.CustomerID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, req.TenantID, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to appointment id=%d", req.CustomerID, appointmentID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, req.TenantID, appointmentID, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", appointmentID)
	return nil
}

// MarkDone отмечает запись выполненной (салонный флоу после визита)
func (s *Service) MarkDone(ctx context.Context, tenantID, appointmentID int64) error {
	return s.markStatus(ctx, tenantID, appointmentID, domain.StatusDone)
}

// MarkNoShow отмечает неявку клиента
func (s *Service) MarkNoShow(ctx context.Context, tenantID, appointmentID int64) error {
	return s.markStatus(ctx, tenantID, appointmentID, domain.StatusNoShow)
}

func (s *Service) markStatus(ctx context.Context, tenantID, appointmentID int64, status domain.AppointmentStatus) error {
	s.logger.Info("markStatus: appointment id=%d -> %s", appointmentID, status)

	err := s.appointmentRepo.UpdateStatus(ctx, tenantID, appointmentID, status)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("markStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("markStatus: failed to update appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: markStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}
