package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/internal/service/schedule/models"
)

// Service сервис управления недельными расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule получает недельное расписание мастера
func (s *Service) GetSchedule(ctx context.Context, tenantID, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for professional=%d", professionalID)

	if err := s.checkProfessional(ctx, tenantID, professionalID); err != nil {
		return nil, err
	}

	entries, err := s.scheduleRepo.ListByProfessional(ctx, tenantID, professionalID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntries(professionalID, entries), nil
}

// ReplaceSchedule заменяет расписание мастера целиком (delete-all-then-insert)
// Замена выполняется в одной транзакции, чтобы конкурентные читатели
// не увидели мастера без расписания
func (s *Service) ReplaceSchedule(ctx context.Context, tenantID, professionalID int64, inputs []*models.ScheduleEntryInput) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: replacing schedule for professional=%d with %d entries", professionalID, len(inputs))

	if err := s.checkProfessional(ctx, tenantID, professionalID); err != nil {
		return nil, err
	}

	entries := make([]*domain.WeeklyScheduleEntry, 0, len(inputs))

	for _, input := range inputs {
		entry, err := input.ToDomainEntry(tenantID, professionalID)
		if err != nil {
			s.logger.Warn("ReplaceSchedule: invalid entry for professional=%d: %v", professionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}

		if err := entry.Validate(); err != nil {
			s.logger.Warn("ReplaceSchedule: entry validation failed for professional=%d: %v", professionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}

		// Воскресные строки сохраняются, но движок доступности их игнорирует
		if entry.Weekday == domain.WeekdaySunday {
			s.logger.Warn("ReplaceSchedule: professional=%d has a Sunday entry, it will never produce slots", professionalID)
		}

		entries = append(entries, entry)
	}

	var created []*domain.WeeklyScheduleEntry

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.scheduleRepo.ReplaceForProfessional(txCtx, tenantID, professionalID, entries)
		if txErr != nil {
			return fmt.Errorf("%w: ReplaceSchedule - repository error: %v", ErrInternal, txErr)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("ReplaceSchedule: failed for professional=%d: %v", professionalID, err)
		return nil, err
	}

	s.logger.Info("ReplaceSchedule: schedule replaced for professional=%d, %d entries", professionalID, len(created))
	return models.FromDomainEntries(professionalID, created), nil
}

func (s *Service) checkProfessional(ctx context.Context, tenantID, professionalID int64) error {
	_, err := s.catalogRepo.GetProfessional(ctx, tenantID, professionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("checkProfessional: professional id=%d not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("checkProfessional: repository error for professional=%d: %v", professionalID, err)
		return fmt.Errorf("%w: checkProfessional - repository error: %v", ErrInternal, err)
	}
	return nil
}
