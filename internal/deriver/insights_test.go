package deriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

func TestClassifyGrowthInsight(t *testing.T) {
	tests := []struct {
		variation *float64
		expected  domain.GrowthInsight
	}{
		{variation: nil, expected: domain.GrowthNoComparison},
		{variation: floatPtr(120), expected: domain.GrowthExplosive},
		{variation: floatPtr(50.01), expected: domain.GrowthExplosive},
		{variation: floatPtr(50), expected: domain.GrowthStrong},
		{variation: floatPtr(25), expected: domain.GrowthStrong},
		{variation: floatPtr(20.01), expected: domain.GrowthStrong},
		{variation: floatPtr(20), expected: domain.GrowthModerate},
		{variation: floatPtr(0.01), expected: domain.GrowthModerate},
		{variation: floatPtr(0), expected: domain.GrowthStable},
		{variation: floatPtr(-0.01), expected: domain.GrowthSlightDecline},
		{variation: floatPtr(-20), expected: domain.GrowthSlightDecline},
		{variation: floatPtr(-20.01), expected: domain.GrowthSignificantDecline},
		{variation: floatPtr(-100), expected: domain.GrowthSignificantDecline},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.variation != nil {
			name = string(tt.expected)
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyGrowthInsight(tt.variation))
		})
	}
}

func TestClassifyVolumeInsight(t *testing.T) {
	tests := []struct {
		variation *float64
		expected  domain.VolumeInsight
	}{
		{variation: nil, expected: domain.VolumeNoComparison},
		{variation: floatPtr(45), expected: domain.VolumeStrong},
		{variation: floatPtr(30.01), expected: domain.VolumeStrong},
		{variation: floatPtr(30), expected: domain.VolumePositive},
		{variation: floatPtr(25), expected: domain.VolumePositive},
		{variation: floatPtr(0), expected: domain.VolumeFlat},
		{variation: floatPtr(-5), expected: domain.VolumeCaution},
		{variation: floatPtr(-20), expected: domain.VolumeCaution},
		{variation: floatPtr(-20.5), expected: domain.VolumeCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyVolumeInsight(tt.variation))
	}
}

func TestGrowthAndVolumeTablesDiffer(t *testing.T) {
	// 25% é crescimento forte para emissões mas apenas positivo para volume
	v := floatPtr(25)
	assert.Equal(t, domain.GrowthStrong, ClassifyGrowthInsight(v))
	assert.Equal(t, domain.VolumePositive, ClassifyVolumeInsight(v))

	// 40% não é explosivo para emissões mas é forte para volume
	v = floatPtr(40)
	assert.Equal(t, domain.GrowthStrong, ClassifyGrowthInsight(v))
	assert.Equal(t, domain.VolumeStrong, ClassifyVolumeInsight(v))
}

func TestClassifyConversionTier(t *testing.T) {
	tests := []struct {
		pct      float64
		expected domain.ConversionTier
	}{
		{pct: 100, expected: domain.ConversionExcellent},
		{pct: 60, expected: domain.ConversionExcellent},
		{pct: 59.999, expected: domain.ConversionGood},
		{pct: 40, expected: domain.ConversionGood},
		{pct: 39.999, expected: domain.ConversionModerate},
		{pct: 25, expected: domain.ConversionModerate},
		{pct: 24.999, expected: domain.ConversionLow},
		{pct: 0, expected: domain.ConversionLow},
		{pct: 130, expected: domain.ConversionExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyConversionTier(tt.pct), "pct=%v", tt.pct)
	}
}

func TestClassifySellersGapInsight(t *testing.T) {
	tests := []struct {
		name     string
		emit     *float64
		pay      *float64
		expected domain.SellersGapInsight
	}{
		{name: "sem variação de emissão", emit: nil, pay: floatPtr(10), expected: domain.SellersNoClassification},
		{name: "sem variação de pagamento", emit: floatPtr(10), pay: nil, expected: domain.SellersNoClassification},
		{name: "emissão lidera por mais de 20 pontos", emit: floatPtr(45), pay: floatPtr(10), expected: domain.SellersEmissionLeadGap},
		{name: "emissão lidera por exatamente 20 pontos é equilibrado", emit: floatPtr(30), pay: floatPtr(10), expected: domain.SellersBalancedGrowth},
		{name: "pagamento cresce mais rápido", emit: floatPtr(5), pay: floatPtr(6), expected: domain.SellersPaymentOutpacing},
		{name: "pagamento muito acima ainda é aceleração", emit: floatPtr(-10), pay: floatPtr(40), expected: domain.SellersPaymentOutpacing},
		{name: "variações iguais", emit: floatPtr(12), pay: floatPtr(12), expected: domain.SellersBalancedGrowth},
		{name: "emissão lidera por pouco", emit: floatPtr(15), pay: floatPtr(2), expected: domain.SellersBalancedGrowth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifySellersGapInsight(tt.emit, tt.pay))
		})
	}
}

func TestDeriveInsights(t *testing.T) {
	current := domain.MonthSnapshot{ConversionSellersPct: 30}
	variations := &domain.MonthVariations{
		EmissionsPct:   floatPtr(25),
		PaymentsPct:    floatPtr(-25),
		SellersEmitPct: floatPtr(40),
		SellersPayPct:  floatPtr(-5),
		VolumePct:      floatPtr(15),
	}

	insights := DeriveInsights(current, variations)

	assert.Equal(t, domain.GrowthStrong, insights.Emissions.Insight)
	assert.Equal(t, domain.StatusPositive, insights.Emissions.Status)
	assert.Equal(t, domain.GrowthSignificantDecline, insights.Payments.Insight)
	assert.Equal(t, domain.StatusNegative, insights.Payments.Status)
	assert.Equal(t, domain.VolumePositive, insights.Volume.Insight)
	assert.Equal(t, domain.StatusAttention, insights.Volume.Status)
	assert.Equal(t, domain.ConversionModerate, insights.Conversion.Tier)
	assert.Equal(t, domain.StatusAttention, insights.Conversion.Status)
	assert.Equal(t, domain.SellersEmissionLeadGap, insights.Sellers.Insight)
	assert.Equal(t, domain.StatusAttention, insights.Sellers.Status)
}

func TestDeriveInsights_WithoutPreviousMonth(t *testing.T) {
	insights := DeriveInsights(domain.MonthSnapshot{ConversionSellersPct: 65}, nil)

	assert.Equal(t, domain.GrowthNoComparison, insights.Emissions.Insight)
	assert.Equal(t, domain.StatusNone, insights.Emissions.Status)
	assert.Equal(t, domain.VolumeNoComparison, insights.Volume.Insight)
	assert.Equal(t, domain.SellersNoClassification, insights.Sellers.Insight)
	assert.Equal(t, domain.ConversionExcellent, insights.Conversion.Tier)
	assert.Equal(t, domain.StatusPositive, insights.Conversion.Status)
}
