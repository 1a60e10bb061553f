package domain

// GrowthInsight classifica a variação mensal de emissões e pagamentos
type GrowthInsight string

const (
	GrowthExplosive          GrowthInsight = "explosive_growth"
	GrowthStrong             GrowthInsight = "strong_growth"
	GrowthModerate           GrowthInsight = "moderate_growth"
	GrowthStable             GrowthInsight = "stable"
	GrowthSlightDecline      GrowthInsight = "slight_decline"
	GrowthSignificantDecline GrowthInsight = "significant_decline"
	GrowthNoComparison       GrowthInsight = "no_comparison"
)

// VolumeInsight classifica a variação mensal do volume monetário.
// As faixas são diferentes das de GrowthInsight.
type VolumeInsight string

const (
	VolumeStrong       VolumeInsight = "strong"
	VolumePositive     VolumeInsight = "positive"
	VolumeFlat         VolumeInsight = "flat"
	VolumeCaution      VolumeInsight = "caution"
	VolumeCritical     VolumeInsight = "critical"
	VolumeNoComparison VolumeInsight = "no_comparison"
)

// ConversionTier classifica a conversão de sellers do mês
type ConversionTier string

const (
	ConversionExcellent ConversionTier = "excellent"
	ConversionGood      ConversionTier = "good"
	ConversionModerate  ConversionTier = "moderate"
	ConversionLow       ConversionTier = "low"
)

// SellersGapInsight compara o crescimento de sellers que emitem e que pagam
type SellersGapInsight string

const (
	SellersEmissionLeadGap  SellersGapInsight = "emission_lead_gap"
	SellersPaymentOutpacing SellersGapInsight = "payment_outpacing"
	SellersBalancedGrowth   SellersGapInsight = "balanced_growth"
	SellersNoClassification SellersGapInsight = "none"
)

// InsightStatus é o indicador visual da linha (✓, ⚡, ⚠)
type InsightStatus string

const (
	StatusPositive  InsightStatus = "positive"
	StatusAttention InsightStatus = "attention"
	StatusNegative  InsightStatus = "negative"
	StatusNone      InsightStatus = "none"
)

type GrowthInsightRow struct {
	VariationPct *float64      `json:"variation_pct"`
	Insight      GrowthInsight `json:"insight"`
	Status       InsightStatus `json:"status"`
}

type VolumeInsightRow struct {
	VariationPct *float64      `json:"variation_pct"`
	Insight      VolumeInsight `json:"insight"`
	Status       InsightStatus `json:"status"`
}

type ConversionInsightRow struct {
	SellersPct float64        `json:"sellers_pct"`
	Tier       ConversionTier `json:"tier"`
	Status     InsightStatus  `json:"status"`
}

type SellersInsightRow struct {
	EmitVariationPct *float64          `json:"emit_variation_pct"`
	PayVariationPct  *float64          `json:"pay_variation_pct"`
	Insight          SellersGapInsight `json:"insight"`
	Status           InsightStatus     `json:"status"`
}

// MonthInsights agrupa as classificações exibidas na tabela de insights do mês
type MonthInsights struct {
	Emissions  GrowthInsightRow     `json:"emissions"`
	Payments   GrowthInsightRow     `json:"payments"`
	Volume     VolumeInsightRow     `json:"volume"`
	Conversion ConversionInsightRow `json:"conversion"`
	Sellers    SellersInsightRow    `json:"sellers"`
}
