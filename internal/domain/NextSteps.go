package domain

import "github.com/shopspring/decimal"

// CohortActivity conta sellers de uma coorte ativos em cada mês desde a entrada.
// ActiveByMonth[i] é o número de sellers ativos i meses após a entrada.
type CohortActivity struct {
	Cohort        Period
	Sellers       int64
	ActiveByMonth [4]int64
}

// CohortRetention é a retenção percentual de uma coorte
type CohortRetention struct {
	Cohort    Period           `json:"cohort"`
	Sellers   int64            `json:"sellers"`
	Retention RetentionByMonth `json:"retention"`
}

type RetentionByMonth struct {
	Month0 float64 `json:"month_0"`
	Month1 float64 `json:"month_1"`
	Month2 float64 `json:"month_2"`
	Month3 float64 `json:"month_3"`
}

// EngagementBuckets distribui sellers pela quantidade de dias ativos
type EngagementBuckets struct {
	OneDay      int64 `json:"sellers_1_day"`
	TwoToThree  int64 `json:"sellers_2_3_days"`
	FourToSeven int64 `json:"sellers_4_7_days"`
	EightOrMore int64 `json:"sellers_8_plus_days"`
}

// PendingPeriodsBuckets distribui sellers pela quantidade de períodos fiscais
// emitidos e ainda não pagos
type PendingPeriodsBuckets struct {
	One         int64           `json:"sellers_1_pending"`
	TwoToThree  int64           `json:"sellers_2_3_pending"`
	FourToSix   int64           `json:"sellers_4_6_pending"`
	SevenOrMore int64           `json:"sellers_7_plus_pending"`
	Average     decimal.Decimal `json:"average_pending"`
}

type NextStepsResponse struct {
	Cohorts    []CohortRetention     `json:"cohorts"`
	Engagement EngagementBuckets     `json:"engagement"`
	Pending    PendingPeriodsBuckets `json:"pending"`
}
