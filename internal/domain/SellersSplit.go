package domain

// SellerCohortCounts são os sellers de um mês divididos entre novos e recorrentes.
// Um seller é novo no mês do seu primeiro evento daquele tipo.
type SellerCohortCounts struct {
	Period    Period
	Total     int64
	New       int64
	Recurring int64
}

// SellerSplit é a visão de uma atividade (emissão ou pagamento) em um mês
type SellerSplit struct {
	Total        int64   `json:"total"`
	New          int64   `json:"new"`
	Recurring    int64   `json:"recurring"`
	NewPct       float64 `json:"new_pct"`
	RecurringPct float64 `json:"recurring_pct"`
}

// SellersMonth é a linha do endpoint de sellers novos vs recorrentes
type SellersMonth struct {
	Period    Period      `json:"period"`
	Emissions SellerSplit `json:"emissions"`
	Payments  SellerSplit `json:"payments"`
}

type SellersResponse struct {
	Data []SellersMonth `json:"data"`
}
