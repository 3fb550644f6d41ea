package gridconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	configRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/gridconfig"
	"github.com/m04kA/SMC-CalendarService/internal/service/gridconfig/models"
)

type fakeRepo struct {
	configs map[int64]*domain.GridConfig

	nextID    int64
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{configs: make(map[int64]*domain.GridConfig), nextID: 1}
}

func (r *fakeRepo) GetByCompany(_ context.Context, companyID int64) (*domain.GridConfig, error) {
	config, ok := r.configs[companyID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return config, nil
}

func (r *fakeRepo) Create(_ context.Context, config *domain.GridConfig) (*domain.GridConfig, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *config
	created.ID = r.nextID
	r.nextID++
	r.configs[config.CompanyID] = &created
	return &created, nil
}

func (r *fakeRepo) DeleteByCompany(_ context.Context, companyID int64) error {
	if _, ok := r.configs[companyID]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(r.configs, companyID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func validApplyRequest(companyID int64) *models.ApplyConfigRequest {
	base := domain.DefaultGridConfig(companyID)
	return &models.ApplyConfigRequest{
		UserID:    100,
		CompanyID: companyID,

		SlotHeightPx:           base.SlotHeightPx,
		PixelsPerMinute:        base.PixelsPerMinute,
		SlotDurationMinutes:    base.SlotDurationMinutes,
		BusinessStartHour:      base.BusinessStartHour,
		BusinessEndHour:        base.BusinessEndHour,
		LunchStartHour:         base.LunchStartHour,
		LunchEndHour:           base.LunchEndHour,
		DefaultDurationMinutes: base.DefaultDurationMinutes,
		WorkingDays:            base.WorkingDays,
	}
}

func TestService_GetByCompany_Defaults(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.GetByCompany(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultBusinessStartHour, resp.BusinessStartHour)
}

func TestService_Apply_ThenGet(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	req := validApplyRequest(1)
	req.SlotDurationMinutes = 15
	req.BusinessStartHour = 9

	applied, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, applied.IsDefault)
	assert.Equal(t, 15, applied.SlotDurationMinutes)

	got, err := svc.GetByCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, 15, got.SlotDurationMinutes)
	assert.Equal(t, 9, got.BusinessStartHour)
}

func TestService_Apply_ReplacesPrevious(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Apply(context.Background(), validApplyRequest(1))
	require.NoError(t, err)

	req := validApplyRequest(1)
	req.BusinessEndHour = 18
	_, err = svc.Apply(context.Background(), req)
	require.NoError(t, err)

	// У компании ровно одна конфигурация
	assert.Len(t, repo.configs, 1)
	assert.Equal(t, 18, repo.configs[1].BusinessEndHour)
}

func TestService_Apply_RejectsInvalidConfig(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Apply(context.Background(), validApplyRequest(1))
	require.NoError(t, err)

	// Невалидная конфигурация отклоняется, предыдущая остается в силе
	req := validApplyRequest(1)
	req.BusinessEndHour = req.BusinessStartHour
	_, err = svc.Apply(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	got, err := svc.GetByCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, domain.DefaultBusinessEndHour, got.BusinessEndHour)
}

func TestService_GetGridConfig(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	// Без сохраненной конфигурации - значения по умолчанию
	cfg, err := svc.GetGridConfig(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.ID)

	req := validApplyRequest(1)
	req.SlotDurationMinutes = 20
	_, err = svc.Apply(context.Background(), req)
	require.NoError(t, err)

	cfg, err = svc.GetGridConfig(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.SlotDurationMinutes)
}
