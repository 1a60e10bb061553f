package domain

// Valores das colunas event e reason da tabela de pendings
const (
	PendingEventCreated = "created"
	PendingEventDeleted = "deleted"

	PendingReasonSuccess    = "success"
	PendingReasonSuccessWeb = "success_web"
	PendingReasonDismiss    = "dismiss"

	// NoCriticality agrupa as notificações sem tag de criticidade
	NoCriticality = "sin_criticidad"
)

// PendingCounts são os totais brutos do funil de notificações
type PendingCounts struct {
	Sent             int64
	SentSellers      int64
	PaidFromNotif    int64
	PaidSellers      int64
	Dismissed        int64
	DismissedSellers int64
	RealPayments     int64
	RealPaySellers   int64
}

// PendingsSummary é o resumo geral do funil de notificações
type PendingsSummary struct {
	TotalSent             int64   `json:"total_sent"`
	TotalPaidFromNotif    int64   `json:"total_paid_from_notification"`
	TotalRealPayments     int64   `json:"total_real_payments"`
	TotalDismissed        int64   `json:"total_dismissed"`
	TotalOutstanding      int64   `json:"total_outstanding"`
	UniqueSellers         int64   `json:"unique_sellers"`
	RealPaymentSellers    int64   `json:"real_payment_sellers"`
	NotifConversionPct    float64 `json:"notification_conversion_pct"`
	PaymentsConversionPct float64 `json:"payments_conversion_pct"`
	AverageDaysToPay      float64 `json:"average_days_to_pay"`
}

// PendingsMonthCounts são os totais brutos de um mês
type PendingsMonthCounts struct {
	Period Period
	PendingCounts
}

// PendingsMonth é a linha mensal do funil
type PendingsMonth struct {
	Period                Period  `json:"period"`
	Sent                  int64   `json:"notifications_sent"`
	SentSellers           int64   `json:"sellers_sent"`
	PaidFromNotif         int64   `json:"paid_from_notification"`
	PaidSellers           int64   `json:"sellers_paid"`
	Dismissed             int64   `json:"dismissed"`
	DismissedSellers      int64   `json:"sellers_dismissed"`
	Outstanding           int64   `json:"outstanding"`
	RealPayments          int64   `json:"real_payments"`
	RealPaySellers        int64   `json:"sellers_real_payments"`
	NotifConversionPct    float64 `json:"notification_conversion_pct"`
	PaymentsConversionPct float64 `json:"payments_conversion_pct"`
}

type PendingsMonthlyResponse struct {
	Data []PendingsMonth `json:"data"`
}

// CriticalityCounts são os totais de um mês para uma tag de criticidade
type CriticalityCounts struct {
	Period      Period
	Criticality string
	Sent        int64
	Paid        int64
	Dismissed   int64
}

// CriticalityFunnel é o funil de uma criticidade dentro de um mês
type CriticalityFunnel struct {
	Sent          int64   `json:"notifications_sent"`
	PaidFromNotif int64   `json:"paid_from_notification"`
	Dismissed     int64   `json:"dismissed"`
	Outstanding   int64   `json:"outstanding"`
	ConversionPct float64 `json:"conversion_pct"`
}

type PendingsCriticalityMonth struct {
	Period        Period                       `json:"period"`
	ByCriticality map[string]CriticalityFunnel `json:"by_criticality"`
}

type PendingsCriticalityResponse struct {
	Data []PendingsCriticalityMonth `json:"data"`
}

// PendingsComparisonMonth compara pagamentos vindos da notificação com pagamentos fiscais reais
type PendingsComparisonMonth struct {
	Period         Period  `json:"period"`
	PaidFromNotif  int64   `json:"paid_from_notification"`
	NotifSellers   int64   `json:"sellers_notification"`
	RealPayments   int64   `json:"real_tax_payments"`
	RealPaySellers int64   `json:"sellers_tax"`
	NotifVsRealPct float64 `json:"notification_vs_real_pct"`
}

type PendingsComparisonResponse struct {
	Data []PendingsComparisonMonth `json:"data"`
}

// RealPayments são os pagamentos fiscais registrados a partir do corte do funil
type RealPayments struct {
	Period  Period
	Count   int64
	Sellers int64
}
