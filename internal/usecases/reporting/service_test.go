package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fiscal-metrics-api/internal/cache"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	dec25 = domain.Period{Year: 2025, Month: time.December}
	jan26 = domain.Period{Year: 2026, Month: time.January}
)

func newService(t *testing.T) (*Service, *mocks.MockTaxEventRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTaxEventRepository(ctrl)
	return NewService(repo, cache.NewTTLCache[string, any](time.Minute)), repo
}

func TestService_GetMonthlyMetrics(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetMonthlyAggregates(gomock.Any()).Return([]domain.MonthlyAggregate{
		{
			Period:    jan26,
			Emissions: domain.EmissionStats{Count: 200, UniqueSellers: 100},
			Payments:  domain.PaymentStats{Count: 50, UniqueSellers: 40, VolumeTotal: decimal.NewFromInt(5000)},
		},
		{
			Period:    dec25,
			Emissions: domain.EmissionStats{Count: 100, UniqueSellers: 80},
			Payments:  domain.PaymentStats{Count: 40, UniqueSellers: 32, VolumeTotal: decimal.NewFromInt(4000)},
		},
	}, nil).Times(1)
	repo.EXPECT().GetPaymentFiscalGroups(gomock.Any()).Return([]domain.PaymentFiscalGroup{
		{EventPeriod: jan26, FiscalPeriod: dec25, Payments: 45, Sellers: 36},
		{EventPeriod: jan26, FiscalPeriod: domain.Period{Year: 2025, Month: time.November}, Payments: 5, Sellers: 4},
	}, nil).Times(1)
	repo.EXPECT().GetSellerCohorts(gomock.Any(), domain.EventTypeEmission).Return([]domain.SellerCohortCounts{
		{Period: jan26, Total: 100, New: 30, Recurring: 70},
	}, nil).Times(1)
	repo.EXPECT().GetSellerCohorts(gomock.Any(), domain.EventTypePayment).Return([]domain.SellerCohortCounts{
		{Period: jan26, Total: 40, New: 10, Recurring: 30},
	}, nil).Times(1)

	response, err := service.GetMonthlyMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Data, 2)

	jan := response.Data[1]
	assert.Equal(t, jan26, jan.Period)
	assert.Equal(t, int64(45), jan.Payments.CorrectCount)
	assert.Equal(t, 90.0, jan.CorrectPaymentsPct)
	assert.Equal(t, int64(30), jan.Emissions.NewSellers)
	assert.Equal(t, int64(30), jan.Payments.RecurringSellers)
	require.NotNil(t, jan.MoM.EmissionsPct)
	assert.Equal(t, 100.0, *jan.MoM.EmissionsPct)

	assert.Equal(t, int64(300), response.Summary.TotalEmissions)
	require.NotNil(t, response.Summary.BestMonth)

	// a segunda chamada vem do cache
	again, err := service.GetMonthlyMetrics(context.Background())
	require.NoError(t, err)
	assert.Same(t, response, again)
}

func TestService_GetMonthlyMetrics_RepositoryError(t *testing.T) {
	service, repo := newService(t)
	dbErr := errors.New("connection refused")

	repo.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(nil, dbErr)

	response, err := service.GetMonthlyMetrics(context.Background())
	assert.Nil(t, response)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_GetSellersMetrics(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetSellerCohorts(gomock.Any(), domain.EventTypeEmission).Return([]domain.SellerCohortCounts{
		{Period: dec25, Total: 10, New: 10},
	}, nil)
	repo.EXPECT().GetSellerCohorts(gomock.Any(), domain.EventTypePayment).Return(nil, nil)

	response, err := service.GetSellersMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	assert.Equal(t, 100.0, response.Data[0].Emissions.NewPct)
	assert.Equal(t, int64(0), response.Data[0].Payments.Total)
}

func TestService_GetMonthDetail(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetMonthTotals(gomock.Any(), jan26, domain.FilterByEvent).Return(&domain.MonthTotals{
		EmissionsCount: 100,
		SellersEmitted: 80,
		PaymentsCount:  60,
		SellersPaid:    50,
		VolumeTotal:    decimal.NewFromInt(6000),
	}, nil).Times(1)
	repo.EXPECT().GetMonthTotals(gomock.Any(), dec25, domain.FilterByEvent).Return(&domain.MonthTotals{
		EmissionsCount: 50,
		SellersEmitted: 40,
		PaymentsCount:  30,
		SellersPaid:    25,
		VolumeTotal:    decimal.NewFromInt(3000),
	}, nil).Times(1)
	repo.EXPECT().GetTopFiscalPeriods(gomock.Any(), jan26, 10).Return([]domain.FiscalPeriodCount{
		{FiscalPeriod: dec25, Emissions: 90, Sellers: 75},
	}, nil).Times(1)

	detail, err := service.GetMonthDetail(context.Background(), "2026-01", "")
	require.NoError(t, err)

	assert.Equal(t, jan26, detail.Period)
	assert.Equal(t, dec25, detail.PreviousPeriod)
	assert.Equal(t, domain.FilterByEvent, detail.Filter)
	require.NotNil(t, detail.Variations)
	assert.Equal(t, 100.0, *detail.Variations.EmissionsPct)
	assert.Len(t, detail.TopFiscalPeriods, 1)
	assert.Equal(t, 62.5, detail.Current.ConversionSellersPct)

	cachedDetail, err := service.GetMonthDetail(context.Background(), "2026-01", "event")
	require.NoError(t, err)
	assert.Same(t, detail, cachedDetail)
}

func TestService_GetMonthDetail_FiscalFilterSkipsTopPeriods(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetMonthTotals(gomock.Any(), jan26, domain.FilterByFiscal).Return(&domain.MonthTotals{EmissionsCount: 5}, nil)
	repo.EXPECT().GetMonthTotals(gomock.Any(), dec25, domain.FilterByFiscal).Return(nil, nil)

	detail, err := service.GetMonthDetail(context.Background(), "2026-01", "fiscal")
	require.NoError(t, err)
	assert.Nil(t, detail.Previous)
	assert.Empty(t, detail.TopFiscalPeriods)
}

func TestService_GetMonthDetail_Errors(t *testing.T) {
	t.Run("período inválido", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.GetMonthDetail(context.Background(), "2026-13", "")
		assert.Equal(t, ErrInvalidPeriod, pkgerrors.Cause(err))
	})

	t.Run("filtro inválido", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.GetMonthDetail(context.Background(), "2026-01", "payment")
		assert.Equal(t, ErrInvalidFilter, pkgerrors.Cause(err))
	})

	t.Run("mês sem dados", func(t *testing.T) {
		service, repo := newService(t)

		repo.EXPECT().GetMonthTotals(gomock.Any(), jan26, domain.FilterByEvent).Return(nil, nil)
		repo.EXPECT().GetMonthTotals(gomock.Any(), dec25, domain.FilterByEvent).Return(&domain.MonthTotals{EmissionsCount: 3}, nil)
		repo.EXPECT().GetTopFiscalPeriods(gomock.Any(), jan26, 10).Return(nil, nil)

		_, err := service.GetMonthDetail(context.Background(), "2026-01", "")
		assert.Equal(t, ErrPeriodNotFound, pkgerrors.Cause(err))
	})

	t.Run("erro no banco", func(t *testing.T) {
		service, repo := newService(t)
		dbErr := errors.New("timeout")

		repo.EXPECT().GetMonthTotals(gomock.Any(), jan26, domain.FilterByEvent).Return(nil, dbErr)
		repo.EXPECT().GetMonthTotals(gomock.Any(), dec25, domain.FilterByEvent).Return(nil, nil)
		repo.EXPECT().GetTopFiscalPeriods(gomock.Any(), jan26, 10).Return(nil, nil)

		_, err := service.GetMonthDetail(context.Background(), "2026-01", "")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_GetNextSteps(t *testing.T) {
	service, repo := newService(t)
	service.now = func() time.Time { return time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC) }

	repo.EXPECT().GetCohortActivity(gomock.Any(), 6).Return([]domain.CohortActivity{
		{Cohort: jan26, Sellers: 50, ActiveByMonth: [4]int64{50, 20}},
	}, nil)
	repo.EXPECT().GetEngagementBuckets(gomock.Any()).Return(domain.EngagementBuckets{OneDay: 7}, nil)
	repo.EXPECT().GetPendingPeriodsBuckets(gomock.Any(), jan26).Return(domain.PendingPeriodsBuckets{One: 3}, nil)

	response, err := service.GetNextSteps(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Cohorts, 1)
	assert.Equal(t, 40.0, response.Cohorts[0].Retention.Month1)
	assert.Equal(t, int64(7), response.Engagement.OneDay)
	assert.Equal(t, int64(3), response.Pending.One)
}

func TestService_Warmup(t *testing.T) {
	service, repo := newService(t)
	service.now = func() time.Time { return time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC) }

	// um valor antigo no cache é descartado
	service.cache.Set(monthlyKey, &domain.MonthlyMetricsResponse{})

	repo.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(nil, nil)
	repo.EXPECT().GetPaymentFiscalGroups(gomock.Any()).Return(nil, nil)
	repo.EXPECT().GetSellerCohorts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)
	repo.EXPECT().GetCohortActivity(gomock.Any(), 6).Return(nil, nil)
	repo.EXPECT().GetEngagementBuckets(gomock.Any()).Return(domain.EngagementBuckets{}, nil)
	repo.EXPECT().GetPendingPeriodsBuckets(gomock.Any(), jan26).Return(domain.PendingPeriodsBuckets{}, nil)

	require.NoError(t, service.Warmup(context.Background()))

	monthly, ok := cached[domain.MonthlyMetricsResponse](service.cache, monthlyKey)
	require.True(t, ok)
	assert.NotNil(t, monthly.Data)
	_, ok = cached[domain.NextStepsResponse](service.cache, nextStepsKey)
	assert.True(t, ok)
}

func TestService_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTaxEventRepository(ctrl)
	service := NewService(repo, nil)

	repo.EXPECT().GetSellerCohorts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

	_, err := service.GetSellersMetrics(context.Background())
	require.NoError(t, err)
	_, err = service.GetSellersMetrics(context.Background())
	require.NoError(t, err)
}
