package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FilterMode define se o mês é filtrado pela data do evento ou pelo período fiscal
type FilterMode string

const (
	FilterByEvent  FilterMode = "event"
	FilterByFiscal FilterMode = "fiscal"
)

// ParseFilterMode valida o filtro recebido; vazio equivale a "event"
func ParseFilterMode(value string) (FilterMode, error) {
	switch FilterMode(value) {
	case "", FilterByEvent:
		return FilterByEvent, nil
	case FilterByFiscal:
		return FilterByFiscal, nil
	default:
		return "", fmt.Errorf("filtro inválido %q: use event ou fiscal", value)
	}
}

// MonthTotals são os totais brutos de um mês lidos do banco
type MonthTotals struct {
	EmissionsCount     int64
	SellersEmitted     int64
	PaymentsCount      int64
	SellersPaid        int64
	EmissionErrorCount int64
	AlreadyPaidCount   int64
	VolumeTotal        decimal.Decimal
	FirstActivity      *time.Time
	LastActivity       *time.Time
}

// IsEmpty indica que nenhum evento foi encontrado no mês
func (t *MonthTotals) IsEmpty() bool {
	return t == nil || (t.EmissionsCount == 0 && t.PaymentsCount == 0 &&
		t.EmissionErrorCount == 0 && t.AlreadyPaidCount == 0 && t.FirstActivity == nil)
}

// MonthSnapshot é a visão derivada de um mês (current ou previous do detalhe)
type MonthSnapshot struct {
	EmissionsCount       int64           `json:"emissions_count"`
	SellersEmitted       int64           `json:"sellers_emitted"`
	PaymentsCount        int64           `json:"payments_count"`
	SellersPaid          int64           `json:"sellers_paid"`
	VolumeTotal          decimal.Decimal `json:"volume_total"`
	AverageTicket        decimal.Decimal `json:"average_ticket"`
	EmissionErrorCount   int64           `json:"emission_error_count"`
	AlreadyPaidCount     int64           `json:"already_paid_count"`
	ConversionEventsPct  float64         `json:"conversion_events_pct"`
	ConversionSellersPct float64         `json:"conversion_sellers_pct"`
	FirstActivity        *time.Time      `json:"first_activity,omitempty"`
	LastActivity         *time.Time      `json:"last_activity,omitempty"`
}

// MonthVariations contém as variações percentuais current vs previous
type MonthVariations struct {
	EmissionsPct     *float64 `json:"emissions_pct"`
	PaymentsPct      *float64 `json:"payments_pct"`
	SellersEmitPct   *float64 `json:"sellers_emit_pct"`
	SellersPayPct    *float64 `json:"sellers_pay_pct"`
	VolumePct        *float64 `json:"volume_pct"`
	AverageTicketPct *float64 `json:"average_ticket_pct"`
}

// FiscalPeriodCount é uma linha do ranking de períodos fiscais do mês
type FiscalPeriodCount struct {
	FiscalPeriod Period `json:"fiscal_period"`
	Emissions    int64  `json:"emissions"`
	Sellers      int64  `json:"sellers"`
}

// MonthDetail é a resposta do detalhe mensal
type MonthDetail struct {
	Period           Period              `json:"period"`
	PreviousPeriod   Period              `json:"previous_period"`
	Filter           FilterMode          `json:"filter_type"`
	Current          MonthSnapshot       `json:"current"`
	Previous         *MonthSnapshot      `json:"previous"`
	Variations       *MonthVariations    `json:"variations"`
	TopFiscalPeriods []FiscalPeriodCount `json:"top_fiscal_periods"`
	Insights         *MonthInsights      `json:"insights"`
}
