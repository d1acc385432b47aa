package get_available_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/internal/scheduling"
)

// UseCase use case для получения доступных дней месяца
// Отдаёт календарю список дат, в которых есть хотя бы один свободный слот
// для выбранных мастера и услуги
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

// Execute выполняет use case получения доступных дней
//
// Данные забираются двумя запросами на весь месяц (записи range-запросом,
// расписание целиком), дальше посуточный проход без обращений к БД
// Результат - чистая функция от двух выборок и текущего момента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: tenant=%d, professional=%d, service=%d, month=%d-%02d",
		req.TenantID, req.ProfessionalID, req.ServiceID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	if _, err := uc.catalogRepo.GetProfessional(ctx, req.TenantID, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableDays: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу - её длительность задаёт размер слота
	service, err := uc.catalogRepo.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDays: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableDays: service id=%d has invalid duration %d", req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 5. Границы месяца для range-запроса записей
	monthFirst, monthLast := calendar.MonthBounds(req.Year, req.Month)
	rangeStart, _ := calendar.DayBounds(monthFirst)
	_, rangeEnd := calendar.DayBounds(monthLast)

	// 6. Одним запросом забираем все блокирующие записи месяца
	filter := domain.ProfessionalAppointmentsFilter{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		RangeStart:     &rangeStart,
		RangeEnd:       &rangeEnd,
	}

	appointments, err := uc.appointmentRepo.ListByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Одним запросом забираем расписание и индексируем по дню недели
	entries, err := uc.scheduleRepo.ListByProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule := domain.IndexByWeekday(entries)

	// 8. Посуточный проход по месяцу
	days := make([]string, 0)

	for d := monthFirst; !d.After(monthLast); d = d.AddDate(0, 0, 1) {
		// Прошедшие дни не бронируются
		if calendar.IsPastDate(d, now) {
			continue
		}

		// Праздники исключаются независимо от расписания
		if uc.holidays != nil && uc.holidays.IsHoliday(d) {
			continue
		}

		weekday := calendar.Weekday(d)

		// Воскресенье закрыто всегда - бизнес-правило, а не расписание
		if weekday == domain.WeekdaySunday {
			continue
		}

		dayEntries, ok := schedule[weekday]
		if !ok || len(dayEntries) == 0 {
			continue
		}

		dayAppointments := scheduling.FilterByDay(appointments, d)

		free, err := scheduling.HasFreeSlot(d, dayEntries, service.DurationMinutes, dayAppointments, now)
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to scan day %s: %v", d.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to scan day: %v", ErrInternal, err)
		}

		if free {
			days = append(days, d.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetAvailableDays: %d available days for professional=%d, service=%d, month=%d-%02d",
		len(days), req.ProfessionalID, req.ServiceID, req.Year, req.Month)

	return &Response{
		Year:           req.Year,
		Month:          req.Month,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Days:           days,
	}, nil
}
