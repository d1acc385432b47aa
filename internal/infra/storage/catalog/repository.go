package catalog

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

// Repository репозиторий справочных данных салона:
// услуги, мастера и клиенты - read-only входы движка доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу по ID в рамках тенанта
func (r *Repository) GetService(ctx context.Context, tenantID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"price",
		"duration_minutes",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.TenantID,
		&svc.Name,
		&svc.Price,
		&svc.DurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// GetProfessional получает мастера по ID в рамках тенанта
func (r *Repository) GetProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": professionalID, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var pro domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pro.ID,
		&pro.TenantID,
		&pro.Name,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - scan professional: %v", ErrScanRow, err)
	}

	pro.CreatedAt = createdAt.Time
	pro.UpdatedAt = updatedAt.Time

	return &pro, nil
}

// GetCustomer получает клиента по ID в рамках тенанта
func (r *Repository) GetCustomer(ctx context.Context, tenantID, customerID int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"created_at",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"id": customerID, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var cust domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cust.ID,
		&cust.TenantID,
		&cust.Name,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomer - scan customer: %v", ErrScanRow, err)
	}

	cust.CreatedAt = createdAt.Time
	cust.UpdatedAt = updatedAt.Time

	return &cust, nil
}
