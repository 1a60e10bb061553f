package notifying

import (
	"context"

	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier expõe o funil das notificações de DAS pendente
type Notifier interface {
	GetSummary(ctx context.Context) (*domain.PendingsSummary, error)
	GetMonthly(ctx context.Context) (*domain.PendingsMonthlyResponse, error)
	GetByCriticality(ctx context.Context) (*domain.PendingsCriticalityResponse, error)
	GetComparison(ctx context.Context) (*domain.PendingsComparisonResponse, error)
	Warmup(ctx context.Context) error
}
