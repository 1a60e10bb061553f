package deriver

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"github.com/vfg2006/fiscal-metrics-api/pkg/utils"
)

// As funções compostas deste arquivo arredondam percentuais para duas casas,
// como o dashboard exibe. As operações primitivas em deriver.go não arredondam.

func round(v float64) float64 {
	return utils.RoundWithTwoDecimalPlace(v)
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round(*v)
	return &r
}

// DeriveSeries calcula conversões e variações mês a mês para uma série de
// agregados. A série é ordenada por período; cada linha é comparada com a
// linha anterior da própria série.
func DeriveSeries(aggregates []domain.MonthlyAggregate) []domain.MonthlyMetrics {
	sorted := make([]domain.MonthlyAggregate, len(aggregates))
	copy(sorted, aggregates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period.Before(sorted[j].Period)
	})

	series := make([]domain.MonthlyMetrics, 0, len(sorted))
	for i, agg := range sorted {
		row := domain.MonthlyMetrics{
			MonthlyAggregate:   agg,
			Year:               agg.Period.Year,
			Month:              int(agg.Period.Month),
			EmissionsPerSeller: roundPtr(PerSellerAverage(agg.Emissions.Count, agg.Emissions.UniqueSellers)),
			PaymentsPerSeller:  roundPtr(PerSellerAverage(agg.Payments.Count, agg.Payments.UniqueSellers)),
			AverageTicket:      AverageTicket(agg.Payments.VolumeTotal, agg.Payments.Count).Round(2),
			Conversion: domain.Conversion{
				EventsPct:  round(ComputeConversion(agg.Emissions.Count, agg.Payments.Count)),
				SellersPct: round(ComputeConversion(agg.Emissions.UniqueSellers, agg.Payments.UniqueSellers)),
			},
			CorrectPaymentsPct: round(Share(agg.Payments.CorrectCount, agg.Payments.Count)),
		}

		if i > 0 {
			prev := sorted[i-1]
			row.MoM = domain.MoMGrowth{
				EmissionsPct:   roundPtr(Variation(float64(prev.Emissions.Count), float64(agg.Emissions.Count))),
				PaymentsPct:    roundPtr(Variation(float64(prev.Payments.Count), float64(agg.Payments.Count))),
				SellersEmitPct: roundPtr(Variation(float64(prev.Emissions.UniqueSellers), float64(agg.Emissions.UniqueSellers))),
				SellersPayPct:  roundPtr(Variation(float64(prev.Payments.UniqueSellers), float64(agg.Payments.UniqueSellers))),
				VolumePct:      roundPtr(DecimalVariation(prev.Payments.VolumeTotal, agg.Payments.VolumeTotal)),
			}
		}

		series = append(series, row)
	}

	return series
}

// Summarize totaliza a série e identifica o mês de melhor conversão de sellers
func Summarize(series []domain.MonthlyMetrics) domain.MonthlySummary {
	summary := domain.MonthlySummary{TotalVolume: decimal.Zero}

	for i := range series {
		row := &series[i]
		summary.TotalEmissions += row.Emissions.Count
		summary.TotalPayments += row.Payments.Count
		summary.TotalVolume = summary.TotalVolume.Add(row.Payments.VolumeTotal)

		if summary.BestMonth == nil || row.Conversion.SellersPct > summary.BestMonth.ConversionSellers {
			summary.BestMonth = &domain.BestMonth{
				Period:            row.Period,
				ConversionSellers: row.Conversion.SellersPct,
			}
		}
	}

	summary.AverageConversion = round(ComputeConversion(summary.TotalEmissions, summary.TotalPayments))
	return summary
}

// DeriveSnapshot monta a visão derivada de um mês a partir dos totais brutos
func DeriveSnapshot(totals domain.MonthTotals) domain.MonthSnapshot {
	return domain.MonthSnapshot{
		EmissionsCount:       totals.EmissionsCount,
		SellersEmitted:       totals.SellersEmitted,
		PaymentsCount:        totals.PaymentsCount,
		SellersPaid:          totals.SellersPaid,
		VolumeTotal:          totals.VolumeTotal,
		AverageTicket:        AverageTicket(totals.VolumeTotal, totals.PaymentsCount).Round(2),
		EmissionErrorCount:   totals.EmissionErrorCount,
		AlreadyPaidCount:     totals.AlreadyPaidCount,
		ConversionEventsPct:  round(ComputeConversion(totals.EmissionsCount, totals.PaymentsCount)),
		ConversionSellersPct: round(ComputeConversion(totals.SellersEmitted, totals.SellersPaid)),
		FirstActivity:        totals.FirstActivity,
		LastActivity:         totals.LastActivity,
	}
}

// DeriveVariations compara dois meses campo a campo
func DeriveVariations(current, previous domain.MonthSnapshot) domain.MonthVariations {
	return domain.MonthVariations{
		EmissionsPct:     roundPtr(Variation(float64(previous.EmissionsCount), float64(current.EmissionsCount))),
		PaymentsPct:      roundPtr(Variation(float64(previous.PaymentsCount), float64(current.PaymentsCount))),
		SellersEmitPct:   roundPtr(Variation(float64(previous.SellersEmitted), float64(current.SellersEmitted))),
		SellersPayPct:    roundPtr(Variation(float64(previous.SellersPaid), float64(current.SellersPaid))),
		VolumePct:        roundPtr(DecimalVariation(previous.VolumeTotal, current.VolumeTotal)),
		AverageTicketPct: roundPtr(DecimalVariation(previous.AverageTicket, current.AverageTicket)),
	}
}

// DeriveMonthDetail monta o detalhe mensal. previous nil ou vazio significa que
// não há mês anterior com dados: previous e variations ficam nulos.
func DeriveMonthDetail(
	period domain.Period,
	filter domain.FilterMode,
	current domain.MonthTotals,
	previous *domain.MonthTotals,
	topFiscalPeriods []domain.FiscalPeriodCount,
) domain.MonthDetail {
	detail := domain.MonthDetail{
		Period:           period,
		PreviousPeriod:   period.Previous(),
		Filter:           filter,
		Current:          DeriveSnapshot(current),
		TopFiscalPeriods: []domain.FiscalPeriodCount{},
	}

	if !previous.IsEmpty() {
		prev := DeriveSnapshot(*previous)
		variations := DeriveVariations(detail.Current, prev)
		detail.Previous = &prev
		detail.Variations = &variations
	}

	if filter == domain.FilterByEvent && len(topFiscalPeriods) > 0 {
		top := make([]domain.FiscalPeriodCount, len(topFiscalPeriods))
		copy(top, topFiscalPeriods)
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Emissions > top[j].Emissions
		})
		detail.TopFiscalPeriods = top
	}

	insights := DeriveInsights(detail.Current, detail.Variations)
	detail.Insights = &insights

	return detail
}

// ApplyPaymentCorrectness preenche os pagamentos corretos de cada mês a partir
// dos grupos (mês do evento, período fiscal). Como só um período fiscal é
// correto para cada mês, os sellers do grupo correto podem ser copiados.
func ApplyPaymentCorrectness(aggregates []domain.MonthlyAggregate, groups []domain.PaymentFiscalGroup) {
	index := make(map[domain.Period]int, len(aggregates))
	for i, agg := range aggregates {
		index[agg.Period] = i
	}

	for _, g := range groups {
		i, ok := index[g.EventPeriod]
		if !ok || !ClassifyPaymentCorrectness(g.EventPeriod.Start(), g.FiscalPeriod) {
			continue
		}
		aggregates[i].Payments.CorrectCount += g.Payments
		aggregates[i].Payments.CorrectSellers += g.Sellers
	}
}

// ApplySellerCohorts copia a divisão novos/recorrentes para os agregados
func ApplySellerCohorts(aggregates []domain.MonthlyAggregate, emissions, payments []domain.SellerCohortCounts) {
	index := make(map[domain.Period]int, len(aggregates))
	for i, agg := range aggregates {
		index[agg.Period] = i
	}

	for _, c := range emissions {
		if i, ok := index[c.Period]; ok {
			aggregates[i].Emissions.NewSellers = c.New
			aggregates[i].Emissions.RecurringSellers = c.Recurring
		}
	}
	for _, c := range payments {
		if i, ok := index[c.Period]; ok {
			aggregates[i].Payments.NewSellers = c.New
			aggregates[i].Payments.RecurringSellers = c.Recurring
		}
	}
}
