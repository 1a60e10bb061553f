package reporting

import (
	"context"

	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter expõe as métricas de emissão e pagamento de DAS do dashboard
type Reporter interface {
	// GetMonthlyMetrics retorna a série mensal com conversão, variação MoM e resumo
	GetMonthlyMetrics(ctx context.Context) (*domain.MonthlyMetricsResponse, error)

	// GetSellersMetrics retorna sellers novos vs recorrentes por mês
	GetSellersMetrics(ctx context.Context) (*domain.SellersResponse, error)

	// GetMonthDetail retorna o detalhe de um mês (YYYY-MM) comparado ao mês anterior
	GetMonthDetail(ctx context.Context, period, filter string) (*domain.MonthDetail, error)

	// GetNextSteps retorna retenção por coorte, engajamento e períodos pendentes
	GetNextSteps(ctx context.Context) (*domain.NextStepsResponse, error)

	// Warmup recalcula as respostas principais e guarda no cache
	Warmup(ctx context.Context) error
}
