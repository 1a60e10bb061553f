package deriver

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

func aggregate(year int, month time.Month, emissions, sellersEmit, payments, sellersPay int64, volume string) domain.MonthlyAggregate {
	return domain.MonthlyAggregate{
		Period: domain.Period{Year: year, Month: month},
		Emissions: domain.EmissionStats{
			Count:         emissions,
			UniqueSellers: sellersEmit,
		},
		Payments: domain.PaymentStats{
			Count:         payments,
			UniqueSellers: sellersPay,
			VolumeTotal:   decimal.RequireFromString(volume),
		},
	}
}

func TestDeriveSeries(t *testing.T) {
	aggregates := []domain.MonthlyAggregate{
		aggregate(2026, time.January, 1000, 500, 300, 150, "45000.00"),
		aggregate(2025, time.December, 800, 400, 250, 120, "30000.00"),
	}
	aggregates[0].Payments.CorrectCount = 240

	series := DeriveSeries(aggregates)
	require.Len(t, series, 2)

	first := series[0]
	assert.Equal(t, "2025-12", first.Period.String())
	assert.Equal(t, 2025, first.Year)
	assert.Equal(t, 12, first.Month)
	assert.Nil(t, first.MoM.EmissionsPct)
	assert.Nil(t, first.MoM.PaymentsPct)
	assert.Nil(t, first.MoM.VolumePct)
	assert.Equal(t, 31.25, first.Conversion.EventsPct)
	assert.Equal(t, 30.0, first.Conversion.SellersPct)

	second := series[1]
	assert.Equal(t, "2026-01", second.Period.String())
	assert.Equal(t, 30.0, second.Conversion.EventsPct)
	assert.Equal(t, 30.0, second.Conversion.SellersPct)
	require.NotNil(t, second.MoM.EmissionsPct)
	assert.Equal(t, 25.0, *second.MoM.EmissionsPct)
	require.NotNil(t, second.MoM.PaymentsPct)
	assert.Equal(t, 20.0, *second.MoM.PaymentsPct)
	require.NotNil(t, second.MoM.SellersPayPct)
	assert.Equal(t, 25.0, *second.MoM.SellersPayPct)
	require.NotNil(t, second.MoM.VolumePct)
	assert.Equal(t, 50.0, *second.MoM.VolumePct)
	assert.True(t, decimal.NewFromInt(150).Equal(second.AverageTicket))
	assert.Equal(t, 80.0, second.CorrectPaymentsPct)
	require.NotNil(t, second.EmissionsPerSeller)
	assert.Equal(t, 2.0, *second.EmissionsPerSeller)
}

func TestDeriveSeries_ZeroBaselineHasNoVariation(t *testing.T) {
	series := DeriveSeries([]domain.MonthlyAggregate{
		aggregate(2025, time.November, 0, 0, 0, 0, "0"),
		aggregate(2025, time.December, 10, 5, 2, 2, "5000"),
	})

	require.Len(t, series, 2)
	assert.Nil(t, series[1].MoM.EmissionsPct)
	assert.Nil(t, series[1].MoM.VolumePct)
	assert.Nil(t, series[0].EmissionsPerSeller)
	assert.Equal(t, 0.0, series[0].Conversion.EventsPct)
}

func TestDeriveSeries_Empty(t *testing.T) {
	series := DeriveSeries(nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestDeriveSeries_DoesNotReorderInput(t *testing.T) {
	aggregates := []domain.MonthlyAggregate{
		aggregate(2026, time.February, 1, 1, 1, 1, "1"),
		aggregate(2026, time.January, 1, 1, 1, 1, "1"),
	}

	DeriveSeries(aggregates)
	assert.Equal(t, time.February, aggregates[0].Period.Month)
}

func TestSummarize(t *testing.T) {
	series := DeriveSeries([]domain.MonthlyAggregate{
		aggregate(2025, time.October, 100, 50, 20, 10, "1000.50"),
		aggregate(2025, time.November, 100, 50, 40, 30, "2000.25"),
		aggregate(2025, time.December, 100, 50, 30, 30, "1500.00"),
	})

	summary := Summarize(series)

	assert.Equal(t, int64(300), summary.TotalEmissions)
	assert.Equal(t, int64(90), summary.TotalPayments)
	assert.True(t, decimal.RequireFromString("4500.75").Equal(summary.TotalVolume))
	assert.Equal(t, 30.0, summary.AverageConversion)
	require.NotNil(t, summary.BestMonth)
	// empate em 60%: o primeiro mês com o maior valor vence
	assert.Equal(t, "2025-11", summary.BestMonth.Period.String())
	assert.Equal(t, 60.0, summary.BestMonth.ConversionSellers)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Nil(t, summary.BestMonth)
	assert.Equal(t, 0.0, summary.AverageConversion)
	assert.True(t, summary.TotalVolume.IsZero())
}

func TestDeriveMonthDetail(t *testing.T) {
	period := domain.Period{Year: 2026, Month: time.January}
	current := domain.MonthTotals{
		EmissionsCount: 1000,
		SellersEmitted: 500,
		PaymentsCount:  300,
		SellersPaid:    150,
		VolumeTotal:    decimal.RequireFromString("45000"),
	}
	previous := &domain.MonthTotals{
		EmissionsCount: 800,
		SellersEmitted: 400,
		PaymentsCount:  250,
		SellersPaid:    120,
		VolumeTotal:    decimal.RequireFromString("40000"),
	}
	top := []domain.FiscalPeriodCount{
		{FiscalPeriod: domain.Period{Year: 2025, Month: time.November}, Emissions: 100, Sellers: 80},
		{FiscalPeriod: domain.Period{Year: 2025, Month: time.December}, Emissions: 850, Sellers: 450},
	}

	detail := DeriveMonthDetail(period, domain.FilterByEvent, current, previous, top)

	assert.Equal(t, "2025-12", detail.PreviousPeriod.String())
	assert.Equal(t, 30.0, detail.Current.ConversionSellersPct)
	require.NotNil(t, detail.Previous)
	require.NotNil(t, detail.Variations)
	assert.Equal(t, 25.0, *detail.Variations.EmissionsPct)
	assert.Equal(t, 12.5, *detail.Variations.VolumePct)
	require.Len(t, detail.TopFiscalPeriods, 2)
	assert.Equal(t, time.December, detail.TopFiscalPeriods[0].FiscalPeriod.Month)

	require.NotNil(t, detail.Insights)
	assert.Equal(t, domain.GrowthStrong, detail.Insights.Emissions.Insight)
	assert.Equal(t, domain.ConversionModerate, detail.Insights.Conversion.Tier)
}

func TestDeriveMonthDetail_WithoutPreviousMonth(t *testing.T) {
	period := domain.Period{Year: 2026, Month: time.January}
	current := domain.MonthTotals{EmissionsCount: 10, SellersEmitted: 10, PaymentsCount: 7, SellersPaid: 7}

	detail := DeriveMonthDetail(period, domain.FilterByFiscal, current, &domain.MonthTotals{}, nil)

	assert.Nil(t, detail.Previous)
	assert.Nil(t, detail.Variations)
	assert.NotNil(t, detail.TopFiscalPeriods)
	assert.Empty(t, detail.TopFiscalPeriods)
	require.NotNil(t, detail.Insights)
	assert.Equal(t, domain.GrowthNoComparison, detail.Insights.Payments.Insight)
	assert.Equal(t, domain.ConversionExcellent, detail.Insights.Conversion.Tier)
}

func TestDeriveMonthDetail_FiscalFilterIgnoresTopPeriods(t *testing.T) {
	period := domain.Period{Year: 2026, Month: time.January}
	top := []domain.FiscalPeriodCount{{FiscalPeriod: period, Emissions: 5, Sellers: 5}}

	detail := DeriveMonthDetail(period, domain.FilterByFiscal, domain.MonthTotals{EmissionsCount: 5}, nil, top)

	assert.Empty(t, detail.TopFiscalPeriods)
}

func TestApplyPaymentCorrectness(t *testing.T) {
	aggregates := []domain.MonthlyAggregate{
		aggregate(2026, time.January, 0, 0, 10, 9, "0"),
		aggregate(2025, time.December, 0, 0, 4, 4, "0"),
	}
	groups := []domain.PaymentFiscalGroup{
		{EventPeriod: domain.Period{Year: 2026, Month: time.January}, FiscalPeriod: domain.Period{Year: 2025, Month: time.December}, Payments: 7, Sellers: 6},
		{EventPeriod: domain.Period{Year: 2026, Month: time.January}, FiscalPeriod: domain.Period{Year: 2025, Month: time.October}, Payments: 3, Sellers: 3},
		{EventPeriod: domain.Period{Year: 2025, Month: time.December}, FiscalPeriod: domain.Period{Year: 2025, Month: time.December}, Payments: 4, Sellers: 4},
		{EventPeriod: domain.Period{Year: 2024, Month: time.May}, FiscalPeriod: domain.Period{Year: 2024, Month: time.April}, Payments: 1, Sellers: 1},
	}

	ApplyPaymentCorrectness(aggregates, groups)

	assert.Equal(t, int64(7), aggregates[0].Payments.CorrectCount)
	assert.Equal(t, int64(6), aggregates[0].Payments.CorrectSellers)
	assert.Equal(t, int64(0), aggregates[1].Payments.CorrectCount)
}

func TestApplySellerCohorts(t *testing.T) {
	aggregates := []domain.MonthlyAggregate{aggregate(2025, time.December, 10, 8, 5, 5, "0")}

	ApplySellerCohorts(aggregates,
		[]domain.SellerCohortCounts{{Period: dec25, Total: 8, New: 3, Recurring: 5}, {Period: jan26, Total: 1, New: 1}},
		[]domain.SellerCohortCounts{{Period: dec25, Total: 5, New: 5}},
	)

	assert.Equal(t, int64(3), aggregates[0].Emissions.NewSellers)
	assert.Equal(t, int64(5), aggregates[0].Emissions.RecurringSellers)
	assert.Equal(t, int64(5), aggregates[0].Payments.NewSellers)
	assert.Equal(t, int64(0), aggregates[0].Payments.RecurringSellers)
}
