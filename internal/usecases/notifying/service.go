package notifying

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/repository"
	"github.com/vfg2006/fiscal-metrics-api/internal/cache"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/deriver"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"github.com/vfg2006/fiscal-metrics-api/pkg/log"
)

const (
	summaryKey     = "pendings:summary"
	monthlyKey     = "pendings:monthly"
	criticalityKey = "pendings:criticality"
	comparisonKey  = "pendings:comparison"
)

type Service struct {
	contentID          string
	paymentCutoff      domain.Period
	pendingsRepository repository.PendingsRepository
	cache              cache.Cache[string, any]
}

// NewService cria o serviço do funil. Pagamentos fiscais só contam a partir
// de PENDINGS_PAYMENT_CUTOFF, quando as notificações começaram a ser enviadas.
func NewService(cfg *config.Config, pendingsRepository repository.PendingsRepository, responses cache.Cache[string, any]) (*Service, error) {
	cutoff, err := domain.ParsePeriod(cfg.Pendings.PaymentCutoff)
	if err != nil {
		return nil, errors.Wrap(err, "PENDINGS_PAYMENT_CUTOFF inválido")
	}

	if responses == nil {
		responses = cache.NoopCache[string, any]{}
	}

	return &Service{
		contentID:          cfg.Pendings.ContentID,
		paymentCutoff:      cutoff,
		pendingsRepository: pendingsRepository,
		cache:              responses,
	}, nil
}

func cached[T any](c cache.Cache[string, any], key string) (*T, bool) {
	value, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	typed, ok := value.(*T)
	return typed, ok
}

func (s *Service) GetSummary(ctx context.Context) (*domain.PendingsSummary, error) {
	if summary, ok := cached[domain.PendingsSummary](s.cache, summaryKey); ok {
		return summary, nil
	}

	counts, err := s.pendingsRepository.GetNotificationCounts(ctx, s.contentID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar totais de notificações")
		return nil, errors.Wrap(err, "erro ao buscar totais de notificações")
	}

	averageDays, err := s.pendingsRepository.GetAverageDaysToPay(ctx, s.contentID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar média de dias até o pagamento")
		return nil, errors.Wrap(err, "erro ao buscar média de dias até o pagamento")
	}

	payments, err := s.pendingsRepository.GetRealPayments(ctx, s.paymentCutoff)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar pagamentos fiscais")
		return nil, errors.Wrap(err, "erro ao buscar pagamentos fiscais")
	}

	counts.RealPayments = payments.Count
	counts.RealPaySellers = payments.Sellers

	summary := deriver.DerivePendingsSummary(counts, averageDays)

	s.cache.Set(summaryKey, &summary)
	return &summary, nil
}

// monthlyCounts junta as notificações de cada mês aos pagamentos fiscais do mesmo mês
func (s *Service) monthlyCounts(ctx context.Context) ([]domain.PendingsMonthCounts, error) {
	notifications, err := s.pendingsRepository.GetMonthlyNotificationCounts(ctx, s.contentID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar notificações mensais")
		return nil, errors.Wrap(err, "erro ao buscar notificações mensais")
	}

	payments, err := s.pendingsRepository.GetMonthlyRealPayments(ctx, s.paymentCutoff)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar pagamentos fiscais mensais")
		return nil, errors.Wrap(err, "erro ao buscar pagamentos fiscais mensais")
	}

	return deriver.MergeRealPayments(notifications, payments), nil
}

func (s *Service) GetMonthly(ctx context.Context) (*domain.PendingsMonthlyResponse, error) {
	if response, ok := cached[domain.PendingsMonthlyResponse](s.cache, monthlyKey); ok {
		return response, nil
	}

	months, err := s.monthlyCounts(ctx)
	if err != nil {
		return nil, err
	}

	response := &domain.PendingsMonthlyResponse{
		Data: deriver.DerivePendingsMonthly(months),
	}

	s.cache.Set(monthlyKey, response)
	return response, nil
}

func (s *Service) GetByCriticality(ctx context.Context) (*domain.PendingsCriticalityResponse, error) {
	if response, ok := cached[domain.PendingsCriticalityResponse](s.cache, criticalityKey); ok {
		return response, nil
	}

	rows, err := s.pendingsRepository.GetCriticalityCounts(ctx, s.contentID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar notificações por criticidade")
		return nil, errors.Wrap(err, "erro ao buscar notificações por criticidade")
	}

	response := &domain.PendingsCriticalityResponse{
		Data: deriver.DerivePendingsByCriticality(rows),
	}

	s.cache.Set(criticalityKey, response)
	return response, nil
}

func (s *Service) GetComparison(ctx context.Context) (*domain.PendingsComparisonResponse, error) {
	if response, ok := cached[domain.PendingsComparisonResponse](s.cache, comparisonKey); ok {
		return response, nil
	}

	months, err := s.monthlyCounts(ctx)
	if err != nil {
		return nil, err
	}

	response := &domain.PendingsComparisonResponse{
		Data: deriver.DerivePendingsComparison(months),
	}

	s.cache.Set(comparisonKey, response)
	return response, nil
}

// Warmup recalcula todas as respostas do funil
func (s *Service) Warmup(ctx context.Context) error {
	for _, key := range []string{summaryKey, monthlyKey, criticalityKey, comparisonKey} {
		s.cache.Delete(key)
	}

	if _, err := s.GetSummary(ctx); err != nil {
		return err
	}
	if _, err := s.GetMonthly(ctx); err != nil {
		return err
	}
	if _, err := s.GetByCriticality(ctx); err != nil {
		return err
	}
	if _, err := s.GetComparison(ctx); err != nil {
		return err
	}

	return nil
}
