package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/pkg/dbmetrics"
	"github.com/levkurapov/salon-booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с недельными расписаниями мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByProfessional получает все строки недельного расписания мастера
// Расписание привязано к дням недели, а не к датам, поэтому диапазон не нужен
func (r *Repository) ListByProfessional(ctx context.Context, tenantID, professionalID int64) ([]*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"weekday",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
		"created_at",
		"updated_at",
	).
		From("professional_schedules").
		Where(squirrel.Eq{
			"tenant_id":       tenantID,
			"professional_id": professionalID,
		}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WeeklyScheduleEntry, 0)

	for rows.Next() {
		var entry domain.WeeklyScheduleEntry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.ProfessionalID,
			&entry.Weekday,
			&entry.StartTime,
			&entry.EndTime,
			&entry.BreakStart,
			&entry.BreakEnd,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ReplaceForProfessional заменяет расписание мастера целиком:
// удаляет все строки и вставляет новые (delete-all-then-insert)
// Вызывается внутри транзакции, чтобы читатели не увидели пустое расписание
func (r *Repository) ReplaceForProfessional(ctx context.Context, tenantID, professionalID int64, entries []*domain.WeeklyScheduleEntry) ([]*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_schedules").
		Where(squirrel.Eq{
			"tenant_id":       tenantID,
			"professional_id": professionalID,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - execute delete: %v", ErrExecQuery, err)
	}

	created := make([]*domain.WeeklyScheduleEntry, 0, len(entries))

	for _, entry := range entries {
		insertQuery, insertArgs, err := psqlbuilder.Insert("professional_schedules").
			Columns(
				"tenant_id",
				"professional_id",
				"weekday",
				"start_time",
				"end_time",
				"break_start",
				"break_end",
			).
			Values(
				tenantID,
				professionalID,
				entry.Weekday,
				entry.StartTime,
				entry.EndTime,
				entry.BreakStart,
				entry.BreakEnd,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForProfessional - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		inserted := &domain.WeeklyScheduleEntry{
			TenantID:       tenantID,
			ProfessionalID: professionalID,
			Weekday:        entry.Weekday,
			StartTime:      entry.StartTime,
			EndTime:        entry.EndTime,
			BreakStart:     entry.BreakStart,
			BreakEnd:       entry.BreakEnd,
		}

		err = executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(
			&inserted.ID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForProfessional - execute insert: %v", ErrExecQuery, err)
		}

		inserted.CreatedAt = createdAt.Time
		inserted.UpdatedAt = updatedAt.Time

		created = append(created, inserted)
	}

	return created, nil
}
