package deriver

import (
	"math"

	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

// Faixas de crescimento de emissões e pagamentos
const (
	growthExplosiveAbove = 50.0
	growthStrongAbove    = 20.0
	declineSlightFloor   = -20.0
)

// Faixas do volume monetário
const (
	volumeStrongAbove  = 30.0
	volumeCautionFloor = -20.0
)

// Faixas de conversão de sellers (limite inferior inclusivo)
const (
	conversionExcellentFrom = 60.0
	conversionGoodFrom      = 40.0
	conversionModerateFrom  = 25.0
)

// sellersGapPoints é a diferença em pontos percentuais que separa brecha de equilíbrio
const sellersGapPoints = 20.0

// ClassifyGrowthInsight classifica a variação de emissões ou pagamentos
func ClassifyGrowthInsight(variation *float64) domain.GrowthInsight {
	if variation == nil {
		return domain.GrowthNoComparison
	}

	v := *variation
	switch {
	case v > growthExplosiveAbove:
		return domain.GrowthExplosive
	case v > growthStrongAbove:
		return domain.GrowthStrong
	case v > 0:
		return domain.GrowthModerate
	case v == 0:
		return domain.GrowthStable
	case v >= declineSlightFloor:
		return domain.GrowthSlightDecline
	default:
		return domain.GrowthSignificantDecline
	}
}

// ClassifyVolumeInsight classifica a variação do volume monetário
func ClassifyVolumeInsight(variation *float64) domain.VolumeInsight {
	if variation == nil {
		return domain.VolumeNoComparison
	}

	v := *variation
	switch {
	case v > volumeStrongAbove:
		return domain.VolumeStrong
	case v > 0:
		return domain.VolumePositive
	case v == 0:
		return domain.VolumeFlat
	case v >= volumeCautionFloor:
		return domain.VolumeCaution
	default:
		return domain.VolumeCritical
	}
}

// ClassifyConversionTier classifica a conversão de sellers do mês
func ClassifyConversionTier(sellersPct float64) domain.ConversionTier {
	switch {
	case sellersPct >= conversionExcellentFrom:
		return domain.ConversionExcellent
	case sellersPct >= conversionGoodFrom:
		return domain.ConversionGood
	case sellersPct >= conversionModerateFrom:
		return domain.ConversionModerate
	default:
		return domain.ConversionLow
	}
}

// ClassifySellersGapInsight compara a variação de sellers que emitem com a de
// sellers que pagam. A brecha de emissão tem precedência sobre pagamento
// acelerado, e equilíbrio é o caso restante.
func ClassifySellersGapInsight(emitVariation, payVariation *float64) domain.SellersGapInsight {
	if emitVariation == nil || payVariation == nil {
		return domain.SellersNoClassification
	}

	emit, pay := *emitVariation, *payVariation
	switch {
	case emit > pay+sellersGapPoints:
		return domain.SellersEmissionLeadGap
	case pay > emit:
		return domain.SellersPaymentOutpacing
	case math.Abs(emit-pay) <= sellersGapPoints:
		return domain.SellersBalancedGrowth
	default:
		return domain.SellersNoClassification
	}
}

// growthStatus reproduz o indicador das linhas de emissões, pagamentos e volume
func growthStatus(variation *float64) domain.InsightStatus {
	if variation == nil {
		return domain.StatusNone
	}

	switch v := *variation; {
	case v > growthStrongAbove:
		return domain.StatusPositive
	case v > 0:
		return domain.StatusAttention
	case v < 0:
		return domain.StatusNegative
	default:
		return domain.StatusNone
	}
}

func conversionStatus(sellersPct float64) domain.InsightStatus {
	switch {
	case sellersPct >= conversionGoodFrom:
		return domain.StatusPositive
	case sellersPct >= conversionModerateFrom:
		return domain.StatusAttention
	default:
		return domain.StatusNegative
	}
}

// sellersStatus usa apenas a variação de sellers que pagam
func sellersStatus(payVariation *float64) domain.InsightStatus {
	if payVariation == nil {
		return domain.StatusNone
	}

	switch v := *payVariation; {
	case v > 0:
		return domain.StatusPositive
	case v >= declineSlightFloor:
		return domain.StatusAttention
	default:
		return domain.StatusNegative
	}
}

// DeriveInsights monta a tabela de insights do detalhe mensal
func DeriveInsights(current domain.MonthSnapshot, variations *domain.MonthVariations) domain.MonthInsights {
	v := domain.MonthVariations{}
	if variations != nil {
		v = *variations
	}

	return domain.MonthInsights{
		Emissions: domain.GrowthInsightRow{
			VariationPct: v.EmissionsPct,
			Insight:      ClassifyGrowthInsight(v.EmissionsPct),
			Status:       growthStatus(v.EmissionsPct),
		},
		Payments: domain.GrowthInsightRow{
			VariationPct: v.PaymentsPct,
			Insight:      ClassifyGrowthInsight(v.PaymentsPct),
			Status:       growthStatus(v.PaymentsPct),
		},
		Volume: domain.VolumeInsightRow{
			VariationPct: v.VolumePct,
			Insight:      ClassifyVolumeInsight(v.VolumePct),
			Status:       growthStatus(v.VolumePct),
		},
		Conversion: domain.ConversionInsightRow{
			SellersPct: current.ConversionSellersPct,
			Tier:       ClassifyConversionTier(current.ConversionSellersPct),
			Status:     conversionStatus(current.ConversionSellersPct),
		},
		Sellers: domain.SellersInsightRow{
			EmitVariationPct: v.SellersEmitPct,
			PayVariationPct:  v.SellersPayPct,
			Insight:          ClassifySellersGapInsight(v.SellersEmitPct, v.SellersPayPct),
			Status:           sellersStatus(v.SellersPayPct),
		},
	}
}
