package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/internal/scheduling"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// UseCase use case для получения свободных времён начала на конкретный день
// Шагает по рабочему окну с мелким шагом в 15 минут, чтобы клиент мог
// выбрать любое удобное время старта, а не только кратное длительности услуги
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	holidays        HolidayCalendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	holidays HolidayCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		holidays:        holidays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных времён дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, professional=%d, service=%d, date=%s",
		req.TenantID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	if _, err := uc.catalogRepo.GetProfessional(ctx, req.TenantID, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%d has invalid duration %d", req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	emptyResponse := &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 5. Прошлое, праздники и воскресенье - пустой результат, не ошибка
	if calendar.IsPastDate(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	if uc.holidays != nil && uc.holidays.IsHoliday(req.Date) {
		uc.logger.Info("GetAvailableSlots: date %s is a holiday", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	weekday := calendar.Weekday(req.Date)
	if weekday == domain.WeekdaySunday {
		uc.logger.Info("GetAvailableSlots: date %s is a Sunday", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 6. Расписание мастера на этот день недели
	entries, err := uc.scheduleRepo.ListByProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	dayEntries := domain.IndexByWeekday(entries)[weekday]
	if len(dayEntries) == 0 {
		uc.logger.Info("GetAvailableSlots: professional id=%d has no schedule for weekday %d",
			req.ProfessionalID, weekday)
		return emptyResponse, nil
	}

	// 7. Блокирующие записи дня
	dayStart, dayEnd := calendar.DayBounds(req.Date)
	filter := domain.ProfessionalAppointmentsFilter{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		RangeStart:     &dayStart,
		RangeEnd:       &dayEnd,
	}

	appointments, err := uc.appointmentRepo.ListByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Генерация с мелким шагом и фильтрация через детектор пересечений
	slots, err := scheduling.FreeStartTimes(req.Date, dayEntries, service.DurationMinutes, appointments, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
