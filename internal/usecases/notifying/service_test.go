package notifying

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fiscal-metrics-api/internal/cache"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const contentID = "mp.sellers.generic_pendings.das_payment_pendings"

var (
	dec25 = domain.Period{Year: 2025, Month: time.December}
	jan26 = domain.Period{Year: 2026, Month: time.January}
)

func testConfig() *config.Config {
	return &config.Config{
		Pendings: config.Pendings{
			ContentID:     contentID,
			PaymentCutoff: "2025-12",
		},
	}
}

func newService(t *testing.T) (*Service, *mocks.MockPendingsRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPendingsRepository(ctrl)

	service, err := NewService(testConfig(), repo, cache.NewTTLCache[string, any](time.Minute))
	require.NoError(t, err)

	return service, repo
}

func TestNewService_InvalidCutoff(t *testing.T) {
	cfg := testConfig()
	cfg.Pendings.PaymentCutoff = "dezembro"

	_, err := NewService(cfg, nil, nil)
	assert.Error(t, err)
}

func TestService_GetSummary(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetNotificationCounts(gomock.Any(), contentID).Return(domain.PendingCounts{
		Sent:          400,
		SentSellers:   350,
		PaidFromNotif: 100,
		PaidSellers:   95,
		Dismissed:     60,
	}, nil).Times(1)
	repo.EXPECT().GetAverageDaysToPay(gomock.Any(), contentID).Return(2.24, nil).Times(1)
	repo.EXPECT().GetRealPayments(gomock.Any(), dec25).Return(domain.RealPayments{Period: dec25, Count: 250, Sellers: 240}, nil).Times(1)

	summary, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(240), summary.TotalOutstanding)
	assert.Equal(t, 25.0, summary.NotifConversionPct)
	assert.Equal(t, 40.0, summary.PaymentsConversionPct)
	assert.Equal(t, int64(250), summary.TotalRealPayments)
	assert.Equal(t, int64(240), summary.RealPaymentSellers)
	assert.Equal(t, 2.2, summary.AverageDaysToPay)

	again, err := service.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Same(t, summary, again)
}

func TestService_GetSummary_RepositoryError(t *testing.T) {
	service, repo := newService(t)
	dbErr := errors.New("relation \"pendings\" does not exist")

	repo.EXPECT().GetNotificationCounts(gomock.Any(), contentID).Return(domain.PendingCounts{}, dbErr)

	_, err := service.GetSummary(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestService_GetMonthlyAndComparison(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetMonthlyNotificationCounts(gomock.Any(), contentID).Return([]domain.PendingsMonthCounts{
		{Period: dec25, PendingCounts: domain.PendingCounts{Sent: 100, PaidFromNotif: 20, Dismissed: 10}},
		{Period: jan26, PendingCounts: domain.PendingCounts{Sent: 80, PaidFromNotif: 40, PaidSellers: 38}},
	}, nil).Times(2)
	repo.EXPECT().GetMonthlyRealPayments(gomock.Any(), dec25).Return([]domain.RealPayments{
		{Period: jan26, Count: 160, Sellers: 150},
	}, nil).Times(2)

	monthly, err := service.GetMonthly(context.Background())
	require.NoError(t, err)
	require.Len(t, monthly.Data, 2)
	assert.Equal(t, int64(70), monthly.Data[0].Outstanding)
	assert.Equal(t, int64(0), monthly.Data[0].RealPayments)
	assert.Equal(t, 25.0, monthly.Data[1].PaymentsConversionPct)

	comparison, err := service.GetComparison(context.Background())
	require.NoError(t, err)
	require.Len(t, comparison.Data, 2)
	assert.Equal(t, jan26, comparison.Data[1].Period)
	assert.Equal(t, int64(38), comparison.Data[1].NotifSellers)
	assert.Equal(t, 25.0, comparison.Data[1].NotifVsRealPct)
}

func TestService_GetByCriticality(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetCriticalityCounts(gomock.Any(), contentID).Return([]domain.CriticalityCounts{
		{Period: jan26, Criticality: "C3", Sent: 10, Paid: 5},
		{Period: jan26, Criticality: "", Sent: 4, Dismissed: 1},
	}, nil)

	response, err := service.GetByCriticality(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	assert.Equal(t, 50.0, response.Data[0].ByCriticality["C3"].ConversionPct)
	assert.Equal(t, int64(3), response.Data[0].ByCriticality[domain.NoCriticality].Outstanding)
}

func TestService_Warmup(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().GetNotificationCounts(gomock.Any(), contentID).Return(domain.PendingCounts{}, nil)
	repo.EXPECT().GetAverageDaysToPay(gomock.Any(), contentID).Return(0.0, nil)
	repo.EXPECT().GetRealPayments(gomock.Any(), dec25).Return(domain.RealPayments{}, nil)
	repo.EXPECT().GetMonthlyNotificationCounts(gomock.Any(), contentID).Return(nil, nil).Times(2)
	repo.EXPECT().GetMonthlyRealPayments(gomock.Any(), dec25).Return(nil, nil).Times(2)
	repo.EXPECT().GetCriticalityCounts(gomock.Any(), contentID).Return(nil, nil)

	require.NoError(t, service.Warmup(context.Background()))

	_, ok := cached[domain.PendingsCriticalityResponse](service.cache, criticalityKey)
	assert.True(t, ok)
}
