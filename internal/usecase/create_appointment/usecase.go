package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/internal/scheduling"
	"github.com/levkurapov/salon-booking-service/pkg/redislock"
)

// UseCase use case для создания записи к мастеру
//
// Проверка пересечений на чтении доступности не защищает от гонки:
// два клиента могут выбрать один слот одновременно. Поэтому запись
// создаётся в сериализуемой транзакции: записи дня выбираются с
// блокировкой (FOR UPDATE), пересечения перепроверяются тем же
// предикатом, что и при чтении, и только потом выполняется INSERT
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	slotLocker      SlotLocker
	lockTTL         time.Duration
	holidays        HolidayCalendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// slotLocker может быть nil - тогда защита только транзакцией
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	slotLocker SlotLocker,
	lockTTL time.Duration,
	holidays HolidayCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		slotLocker:      slotLocker,
		lockTTL:         lockTTL,
		holidays:        holidays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%d, customer=%d, professional=%d, service=%d, date=%s, time=%s",
		req.TenantID, req.CustomerID, req.ProfessionalID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера и клиента
	if _, err := uc.catalogRepo.GetProfessional(ctx, req.TenantID, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetCustomer(ctx, req.TenantID, req.CustomerID); err != nil {
		if errors.Is(err, catalogRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Получаем услугу - конец записи всегда выводится из её длительности
	service, err := uc.catalogRepo.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("CreateAppointment: service id=%d has invalid duration %d", req.ServiceID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 5. Валидация даты: прошлое, воскресенье, праздники
	if err := uc.validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 6. Вычисляем границы записи
	startsAt, err := calendar.CombineDateTime(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	endsAt := startsAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Прошедшее время сегодня
	if calendar.IsSameDay(req.Date, now) && !startsAt.After(now) {
		uc.logger.Warn("CreateAppointment: start time %s is already past", req.StartTime)
		return nil, ErrTooLateToBook
	}

	// 7. Распределённая блокировка слота (если настроена) - защита от
	// конкурентных бронирований между инстансами до открытия транзакции
	if uc.slotLocker != nil {
		lockKey := fmt.Sprintf("appointment:%d:%d:%s",
			req.TenantID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

		if err := uc.slotLocker.Lock(ctx, lockKey, uc.lockTTL); err != nil {
			if errors.Is(err, redislock.ErrNotAcquired) {
				uc.logger.Warn("CreateAppointment: slot lock busy for professional=%d, date=%s",
					req.ProfessionalID, req.Date.Format(domain.DateFormat))
				return nil, ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to acquire slot lock: %v", err)
			return nil, fmt.Errorf("%w: failed to acquire slot lock: %v", ErrInternal, err)
		}
		defer func() {
			if err := uc.slotLocker.Unlock(context.WithoutCancel(ctx), lockKey); err != nil {
				uc.logger.Error("CreateAppointment: failed to release slot lock: %v", err)
			}
		}()
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Слот должен помещаться в рабочее окно мастера
		entries, err := uc.scheduleRepo.ListByProfessional(txCtx, req.TenantID, req.ProfessionalID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		weekday := calendar.Weekday(req.Date)
		dayEntries := domain.IndexByWeekday(entries)[weekday]

		fits, err := uc.slotFitsSchedule(req.Date, dayEntries, startsAt, endsAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check schedule: %v", ErrInternal, err)
		}
		if !fits {
			uc.logger.Warn("CreateAppointment: slot %s-%s does not fit schedule of professional=%d",
				startsAt.Format(domain.TimeFormat), endsAt.Format(domain.TimeFormat), req.ProfessionalID)
			return ErrOutsideWorkingHours
		}

		// 8.2. Записи дня с блокировкой (FOR UPDATE)
		dayStart, dayEnd := calendar.DayBounds(req.Date)
		filter := domain.ProfessionalAppointmentsFilter{
			TenantID:       req.TenantID,
			ProfessionalID: req.ProfessionalID,
			RangeStart:     &dayStart,
			RangeEnd:       &dayEnd,
		}

		appointments, err := uc.appointmentRepo.ListByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.3. Перепроверка пересечений тем же предикатом, что и при чтении
		if scheduling.Overlaps(appointments, startsAt, endsAt) {
			uc.logger.Warn("CreateAppointment: slot %s is taken for professional=%d, date=%s",
				req.StartTime, req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 8.4. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			TenantID:       req.TenantID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			CustomerID:     req.CustomerID,
			StartsAt:       startsAt,
			EndsAt:         endsAt,
			Status:         domain.StatusScheduled,
			ServiceName:    service.Name,
			ServicePrice:   service.Price,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		TenantID:       result.TenantID,
		ProfessionalID: result.ProfessionalID,
		ServiceID:      result.ServiceID,
		CustomerID:     result.CustomerID,
		StartsAt:       result.StartsAt,
		EndsAt:         result.EndsAt,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		ServicePrice:   result.ServicePrice,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// validateDate проверяет, что на дату в принципе можно записаться
func (uc *UseCase) validateDate(date, now time.Time) error {
	if calendar.IsPastDate(date, now) {
		return ErrInvalidDate
	}

	if calendar.Weekday(date) == domain.WeekdaySunday {
		return fmt.Errorf("%w: Sunday is not bookable", ErrDayNotBookable)
	}

	if uc.holidays != nil && uc.holidays.IsHoliday(date) {
		return fmt.Errorf("%w: date is a holiday", ErrDayNotBookable)
	}

	return nil
}

// slotFitsSchedule проверяет, что интервал [startsAt, endsAt) помещается
// в одно из рабочих окон дня и не пересекает перерыв
func (uc *UseCase) slotFitsSchedule(date time.Time, entries []*domain.WeeklyScheduleEntry, startsAt, endsAt time.Time) (bool, error) {
	for _, entry := range entries {
		blockStart, err := calendar.CombineDateTime(date, entry.StartTime)
		if err != nil {
			return false, err
		}
		blockEnd, err := calendar.CombineDateTime(date, entry.EndTime)
		if err != nil {
			return false, err
		}

		if startsAt.Before(blockStart) || endsAt.After(blockEnd) {
			continue
		}

		if entry.HasBreak() {
			breakStart, err := calendar.CombineDateTime(date, entry.BreakStart)
			if err != nil {
				return false, err
			}
			breakEnd, err := calendar.CombineDateTime(date, entry.BreakEnd)
			if err != nil {
				return false, err
			}

			if startsAt.Before(breakEnd) && endsAt.After(breakStart) {
				continue
			}
		}

		return true, nil
	}

	return false, nil
}
