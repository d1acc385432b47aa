package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	"github.com/levkurapov/salon-booking-service/internal/service/schedule/models"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// ── Моки ──

type mockScheduleRepo struct {
	entries    []*domain.WeeklyScheduleEntry
	listErr    error
	replaced   []*domain.WeeklyScheduleEntry
	replaceErr error
}

func (m *mockScheduleRepo) ListByProfessional(_ context.Context, _, _ int64) ([]*domain.WeeklyScheduleEntry, error) {
	return m.entries, m.listErr
}

func (m *mockScheduleRepo) ReplaceForProfessional(_ context.Context, _, _ int64, entries []*domain.WeeklyScheduleEntry) ([]*domain.WeeklyScheduleEntry, error) {
	if m.replaceErr != nil {
		return nil, m.replaceErr
	}
	m.replaced = entries
	result := make([]*domain.WeeklyScheduleEntry, len(entries))
	for i, e := range entries {
		created := *e
		created.ID = int64(i + 1)
		result[i] = &created
	}
	return result, nil
}

type mockCatalogRepo struct {
	professional *domain.Professional
	err          error
}

func (m *mockCatalogRepo) GetProfessional(_ context.Context, _, _ int64) (*domain.Professional, error) {
	return m.professional, m.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ── Хелперы ──

func setup() (*Service, *mockScheduleRepo, *mockCatalogRepo, *fakeTxManager) {
	scheduleRepo := &mockScheduleRepo{}
	catalog := &mockCatalogRepo{professional: &domain.Professional{ID: 7, TenantID: 1, Name: "Анна"}}
	tx := &fakeTxManager{}
	svc := NewService(scheduleRepo, catalog, tx, nopLogger{})
	return svc, scheduleRepo, catalog, tx
}

func entryInput(weekday int, start, end, breakStart, breakEnd string) *models.ScheduleEntryInput {
	return &models.ScheduleEntryInput{
		Weekday:    weekday,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
	}
}

// ── Тесты ──

func TestGetSchedule_Success(t *testing.T) {
	svc, repo, _, _ := setup()
	repo.entries = []*domain.WeeklyScheduleEntry{
		{
			ID: 1, Weekday: 1,
			StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00"),
			BreakStart: types.TimeString("13:00"), BreakEnd: types.TimeString("14:00"),
		},
		{
			ID: 2, Weekday: 2,
			StartTime: types.TimeString("10:00"), EndTime: types.TimeString("16:00"),
			BreakStart: domain.NoBreakSentinel, BreakEnd: domain.NoBreakSentinel,
		},
	}

	resp, err := svc.GetSchedule(context.Background(), 1, 7)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "13:00", resp.Entries[0].BreakStart)
	// Сентинел отсутствия перерыва наружу не отдаётся
	assert.Equal(t, "", resp.Entries[1].BreakStart)
	assert.Equal(t, "", resp.Entries[1].BreakEnd)
}

func TestGetSchedule_ProfessionalNotFound(t *testing.T) {
	svc, _, catalog, _ := setup()
	catalog.err = catalogRepo.ErrProfessionalNotFound

	_, err := svc.GetSchedule(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestReplaceSchedule_Success(t *testing.T) {
	svc, repo, _, tx := setup()

	inputs := []*models.ScheduleEntryInput{
		entryInput(1, "09:00", "18:00", "13:00", "14:00"),
		entryInput(2, "10:00", "16:00", "", ""),
	}

	resp, err := svc.ReplaceSchedule(context.Background(), 1, 7, inputs)
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.replaced, 2)
	assert.Equal(t, domain.NoBreakSentinel, repo.replaced[1].BreakStart)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, int64(1), resp.Entries[0].ID)
	assert.Equal(t, "09:00", resp.Entries[0].StartTime)
}

func TestReplaceSchedule_EmptyListAllowed(t *testing.T) {
	// Пустой список - валидная замена: мастер временно не принимает
	svc, repo, _, _ := setup()

	resp, err := svc.ReplaceSchedule(context.Background(), 1, 7, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.NotNil(t, repo.replaced)
}

func TestReplaceSchedule_InvalidWeekday(t *testing.T) {
	svc, _, _, tx := setup()

	_, err := svc.ReplaceSchedule(context.Background(), 1, 7, []*models.ScheduleEntryInput{
		entryInput(8, "09:00", "18:00", "", ""),
	})
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Equal(t, 0, tx.calls)
}

func TestReplaceSchedule_StartAfterEnd(t *testing.T) {
	svc, _, _, _ := setup()

	_, err := svc.ReplaceSchedule(context.Background(), 1, 7, []*models.ScheduleEntryInput{
		entryInput(1, "18:00", "09:00", "", ""),
	})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestReplaceSchedule_BreakOutsideWindow(t *testing.T) {
	svc, _, _, _ := setup()

	_, err := svc.ReplaceSchedule(context.Background(), 1, 7, []*models.ScheduleEntryInput{
		entryInput(1, "09:00", "18:00", "08:00", "10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestReplaceSchedule_BadTimeFormat(t *testing.T) {
	svc, _, _, _ := setup()

	_, err := svc.ReplaceSchedule(context.Background(), 1, 7, []*models.ScheduleEntryInput{
		entryInput(1, "9 утра", "18:00", "", ""),
	})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestReplaceSchedule_ProfessionalNotFound(t *testing.T) {
	svc, _, catalog, _ := setup()
	catalog.err = catalogRepo.ErrProfessionalNotFound

	_, err := svc.ReplaceSchedule(context.Background(), 1, 7, nil)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
