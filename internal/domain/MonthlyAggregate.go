package domain

import (
	"github.com/shopspring/decimal"
)

// Tipos de evento e status presentes na tabela de eventos fiscais
const (
	EventTypeEmission = "SERPRO-Emission"
	EventTypePayment  = "Payment"

	SerproStatusSuccess     = "success"
	SerproStatusError       = "error"
	SerproStatusAlreadyPaid = "already_paid"
)

// EmissionStats agrega as emissões bem sucedidas de um mês
type EmissionStats struct {
	Count            int64 `json:"count"`
	UniqueSellers    int64 `json:"unique_sellers"`
	NewSellers       int64 `json:"new_sellers"`
	RecurringSellers int64 `json:"recurring_sellers"`
}

// PaymentStats agrega os pagamentos de um mês
type PaymentStats struct {
	Count            int64           `json:"count"`
	UniqueSellers    int64           `json:"unique_sellers"`
	NewSellers       int64           `json:"new_sellers"`
	RecurringSellers int64           `json:"recurring_sellers"`
	CorrectCount     int64           `json:"correct_count"`
	CorrectSellers   int64           `json:"correct_sellers"`
	VolumeTotal      decimal.Decimal `json:"volume_total"`
}

// MonthlyAggregate representa os totais brutos de um período calendário
type MonthlyAggregate struct {
	Period    Period        `json:"period"`
	Emissions EmissionStats `json:"emissions"`
	Payments  PaymentStats  `json:"payments"`
}

// Conversion contém as taxas de conversão derivadas
type Conversion struct {
	EventsPct  float64 `json:"events_pct"`
	SellersPct float64 `json:"sellers_pct"`
}

// MoMGrowth contém as variações percentuais contra o mês anterior da série.
// nil significa que não há base de comparação.
type MoMGrowth struct {
	EmissionsPct   *float64 `json:"emissions_pct"`
	PaymentsPct    *float64 `json:"payments_pct"`
	SellersEmitPct *float64 `json:"sellers_emit_pct"`
	SellersPayPct  *float64 `json:"sellers_pay_pct"`
	VolumePct      *float64 `json:"volume_pct"`
}

// MonthlyMetrics é a linha da série mensal entregue ao dashboard
type MonthlyMetrics struct {
	MonthlyAggregate
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	EmissionsPerSeller *float64        `json:"emissions_per_seller"`
	PaymentsPerSeller  *float64        `json:"payments_per_seller"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	Conversion         Conversion      `json:"conversion"`
	MoM                MoMGrowth       `json:"mom_growth"`
	CorrectPaymentsPct float64         `json:"correct_payments_pct"`
}

// BestMonth identifica o mês com maior conversão de sellers
type BestMonth struct {
	Period            Period  `json:"period"`
	ConversionSellers float64 `json:"conversion_sellers"`
}

// MonthlySummary resume a série inteira
type MonthlySummary struct {
	TotalEmissions    int64           `json:"total_emissions"`
	TotalPayments     int64           `json:"total_payments"`
	TotalVolume       decimal.Decimal `json:"total_volume"`
	AverageConversion float64         `json:"average_conversion"`
	BestMonth         *BestMonth      `json:"best_month"`
}

// MonthlyMetricsResponse é a resposta do endpoint de métricas mensais
type MonthlyMetricsResponse struct {
	Data    []MonthlyMetrics `json:"data"`
	Summary MonthlySummary   `json:"summary"`
}

// PaymentFiscalGroup conta os pagamentos de um mês agrupados pelo período
// fiscal declarado; usado para separar pagamentos corretos dos atrasados.
type PaymentFiscalGroup struct {
	EventPeriod  Period
	FiscalPeriod Period
	Payments     int64
	Sellers      int64
}
