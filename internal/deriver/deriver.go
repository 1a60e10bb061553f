// Package deriver concentra as fórmulas que transformam contagens mensais em
// métricas derivadas: conversões, variações mês a mês, classificação de
// pagamentos corretos e categorias de insight. Todas as funções são puras e
// podem ser chamadas concorrentemente.
package deriver

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

// ComputeConversion retorna numerator / denominator * 100.
// Denominador zero resulta em 0. O valor não é limitado a 100.
func ComputeConversion(denominator, numerator int64) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator) * 100
}

// ComputeMoMVariation retorna a variação percentual de current contra previous.
// Retorna nil quando não existe base (previous nil) ou a base é zero.
func ComputeMoMVariation(previous *float64, current float64) *float64 {
	if previous == nil || *previous == 0 {
		return nil
	}

	variation := (current - *previous) / *previous * 100
	return &variation
}

// Variation é ComputeMoMVariation para uma base sempre presente
func Variation(previous, current float64) *float64 {
	return ComputeMoMVariation(&previous, current)
}

// DecimalVariation calcula a variação entre dois valores monetários
func DecimalVariation(previous, current decimal.Decimal) *float64 {
	return Variation(previous.InexactFloat64(), current.InexactFloat64())
}

// ClassifyPaymentCorrectness indica se o período fiscal declarado é o mês
// imediatamente anterior ao mês da data do pagamento.
func ClassifyPaymentCorrectness(eventDate time.Time, fiscal domain.Period) bool {
	return domain.PeriodOf(eventDate).Previous() == fiscal
}

// AverageTicket retorna volume / pagamentos, ou zero sem pagamentos
func AverageTicket(volume decimal.Decimal, payments int64) decimal.Decimal {
	if payments == 0 {
		return decimal.Zero
	}

	return volume.Div(decimal.NewFromInt(payments))
}

// PerSellerAverage retorna count / sellers; nil quando não há sellers
func PerSellerAverage(count, sellers int64) *float64 {
	if sellers == 0 {
		return nil
	}

	avg := float64(count) / float64(sellers)
	return &avg
}

// Share retorna a participação percentual de part em total
func Share(part, total int64) float64 {
	return ComputeConversion(total, part)
}

// Retention retorna a fração percentual da coorte ativa no mês
func Retention(active, cohort int64) float64 {
	return ComputeConversion(cohort, active)
}

// Outstanding retorna as notificações ainda abertas, nunca negativo
func Outstanding(sent, paid, dismissed int64) int64 {
	open := sent - paid - dismissed
	if open < 0 {
		return 0
	}
	return open
}
