package deriver

import (
	"math"
	"sort"

	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

func sellerSplit(c domain.SellerCohortCounts) domain.SellerSplit {
	return domain.SellerSplit{
		Total:        c.Total,
		New:          c.New,
		Recurring:    c.Recurring,
		NewPct:       round(Share(c.New, c.Total)),
		RecurringPct: round(Share(c.Recurring, c.Total)),
	}
}

// DeriveSellersSplit junta as séries de emissão e pagamento pelo período.
// Meses presentes em só uma das séries recebem zeros na outra.
func DeriveSellersSplit(emissions, payments []domain.SellerCohortCounts) []domain.SellersMonth {
	byPeriod := make(map[domain.Period]*domain.SellersMonth)
	get := func(p domain.Period) *domain.SellersMonth {
		row, ok := byPeriod[p]
		if !ok {
			row = &domain.SellersMonth{Period: p}
			byPeriod[p] = row
		}
		return row
	}

	for _, c := range emissions {
		get(c.Period).Emissions = sellerSplit(c)
	}
	for _, c := range payments {
		get(c.Period).Payments = sellerSplit(c)
	}

	result := make([]domain.SellersMonth, 0, len(byPeriod))
	for _, row := range byPeriod {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result
}

// DeriveCohortRetention converte atividade de coortes em retenção percentual.
// O mês de entrada é sempre 100%.
func DeriveCohortRetention(cohorts []domain.CohortActivity) []domain.CohortRetention {
	result := make([]domain.CohortRetention, 0, len(cohorts))
	for _, c := range cohorts {
		result = append(result, domain.CohortRetention{
			Cohort:  c.Cohort,
			Sellers: c.Sellers,
			Retention: domain.RetentionByMonth{
				Month0: 100,
				Month1: round(Retention(c.ActiveByMonth[1], c.Sellers)),
				Month2: round(Retention(c.ActiveByMonth[2], c.Sellers)),
				Month3: round(Retention(c.ActiveByMonth[3], c.Sellers)),
			},
		})
	}

	return result
}

// DerivePendingsSummary monta o resumo do funil de notificações
func DerivePendingsSummary(counts domain.PendingCounts, averageDaysToPay float64) domain.PendingsSummary {
	return domain.PendingsSummary{
		TotalSent:             counts.Sent,
		TotalPaidFromNotif:    counts.PaidFromNotif,
		TotalRealPayments:     counts.RealPayments,
		TotalDismissed:        counts.Dismissed,
		TotalOutstanding:      Outstanding(counts.Sent, counts.PaidFromNotif, counts.Dismissed),
		UniqueSellers:         counts.SentSellers,
		RealPaymentSellers:    counts.RealPaySellers,
		NotifConversionPct:    round(ComputeConversion(counts.Sent, counts.PaidFromNotif)),
		PaymentsConversionPct: round(ComputeConversion(counts.RealPayments, counts.PaidFromNotif)),
		AverageDaysToPay:      math.Round(averageDaysToPay*10) / 10,
	}
}

// DerivePendingsMonthly monta a evolução mensal do funil
func DerivePendingsMonthly(months []domain.PendingsMonthCounts) []domain.PendingsMonth {
	result := make([]domain.PendingsMonth, 0, len(months))
	for _, m := range months {
		result = append(result, domain.PendingsMonth{
			Period:                m.Period,
			Sent:                  m.Sent,
			SentSellers:           m.SentSellers,
			PaidFromNotif:         m.PaidFromNotif,
			PaidSellers:           m.PaidSellers,
			Dismissed:             m.Dismissed,
			DismissedSellers:      m.DismissedSellers,
			Outstanding:           Outstanding(m.Sent, m.PaidFromNotif, m.Dismissed),
			RealPayments:          m.RealPayments,
			RealPaySellers:        m.RealPaySellers,
			NotifConversionPct:    round(ComputeConversion(m.Sent, m.PaidFromNotif)),
			PaymentsConversionPct: round(ComputeConversion(m.RealPayments, m.PaidFromNotif)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result
}

// DerivePendingsByCriticality agrupa os totais por mês e criticidade
func DerivePendingsByCriticality(rows []domain.CriticalityCounts) []domain.PendingsCriticalityMonth {
	byPeriod := make(map[domain.Period]map[string]domain.CriticalityFunnel)
	for _, r := range rows {
		criticality := r.Criticality
		if criticality == "" {
			criticality = domain.NoCriticality
		}

		funnels, ok := byPeriod[r.Period]
		if !ok {
			funnels = make(map[string]domain.CriticalityFunnel)
			byPeriod[r.Period] = funnels
		}

		f := funnels[criticality]
		f.Sent += r.Sent
		f.PaidFromNotif += r.Paid
		f.Dismissed += r.Dismissed
		funnels[criticality] = f
	}

	result := make([]domain.PendingsCriticalityMonth, 0, len(byPeriod))
	for period, funnels := range byPeriod {
		for key, f := range funnels {
			f.Outstanding = Outstanding(f.Sent, f.PaidFromNotif, f.Dismissed)
			f.ConversionPct = round(ComputeConversion(f.Sent, f.PaidFromNotif))
			funnels[key] = f
		}
		result = append(result, domain.PendingsCriticalityMonth{Period: period, ByCriticality: funnels})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result
}

// DerivePendingsComparison compara pagamentos da notificação com pagamentos fiscais
func DerivePendingsComparison(months []domain.PendingsMonthCounts) []domain.PendingsComparisonMonth {
	result := make([]domain.PendingsComparisonMonth, 0, len(months))
	for _, m := range months {
		result = append(result, domain.PendingsComparisonMonth{
			Period:         m.Period,
			PaidFromNotif:  m.PaidFromNotif,
			NotifSellers:   m.PaidSellers,
			RealPayments:   m.RealPayments,
			RealPaySellers: m.RealPaySellers,
			NotifVsRealPct: round(ComputeConversion(m.RealPayments, m.PaidFromNotif)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result
}

// MergeRealPayments junta os pagamentos fiscais aos totais mensais de
// notificações. Meses com apenas um dos lados também entram na série.
func MergeRealPayments(notifications []domain.PendingsMonthCounts, payments []domain.RealPayments) []domain.PendingsMonthCounts {
	byPeriod := make(map[domain.Period]*domain.PendingsMonthCounts, len(notifications))
	order := make([]domain.Period, 0, len(notifications)+len(payments))

	for i := range notifications {
		row := notifications[i]
		byPeriod[row.Period] = &row
		order = append(order, row.Period)
	}

	for _, p := range payments {
		row, ok := byPeriod[p.Period]
		if !ok {
			row = &domain.PendingsMonthCounts{Period: p.Period}
			byPeriod[p.Period] = row
			order = append(order, p.Period)
		}
		row.RealPayments = p.Count
		row.RealPaySellers = p.Sellers
	}

	result := make([]domain.PendingsMonthCounts, 0, len(order))
	for _, period := range order {
		result = append(result, *byPeriod[period])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result
}
