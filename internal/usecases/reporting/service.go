package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/repository"
	"github.com/vfg2006/fiscal-metrics-api/internal/cache"
	"github.com/vfg2006/fiscal-metrics-api/internal/deriver"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"github.com/vfg2006/fiscal-metrics-api/pkg/log"
)

const (
	topFiscalPeriodsLimit = 10
	cohortsLimit          = 6

	monthlyKey   = "metrics:monthly"
	sellersKey   = "metrics:sellers"
	nextStepsKey = "metrics:nextsteps"
)

type Service struct {
	taxEventRepository repository.TaxEventRepository
	cache              cache.Cache[string, any]
	now                func() time.Time
}

// NewService cria o serviço de métricas. Um cache nil desabilita o cache.
func NewService(taxEventRepository repository.TaxEventRepository, responses cache.Cache[string, any]) *Service {
	if responses == nil {
		responses = cache.NoopCache[string, any]{}
	}

	return &Service{
		taxEventRepository: taxEventRepository,
		cache:              responses,
		now:                time.Now,
	}
}

func cached[T any](c cache.Cache[string, any], key string) (*T, bool) {
	value, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	typed, ok := value.(*T)
	return typed, ok
}

func (s *Service) GetMonthlyMetrics(ctx context.Context) (*domain.MonthlyMetricsResponse, error) {
	if response, ok := cached[domain.MonthlyMetricsResponse](s.cache, monthlyKey); ok {
		return response, nil
	}

	aggregates, err := s.taxEventRepository.GetMonthlyAggregates(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar agregados mensais")
		return nil, errors.Wrap(err, "erro ao buscar agregados mensais")
	}

	groups, err := s.taxEventRepository.GetPaymentFiscalGroups(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar pagamentos por período fiscal")
		return nil, errors.Wrap(err, "erro ao buscar pagamentos por período fiscal")
	}

	emissions, payments, err := s.sellerCohorts(ctx)
	if err != nil {
		return nil, err
	}

	deriver.ApplyPaymentCorrectness(aggregates, groups)
	deriver.ApplySellerCohorts(aggregates, emissions, payments)

	series := deriver.DeriveSeries(aggregates)
	response := &domain.MonthlyMetricsResponse{
		Data:    series,
		Summary: deriver.Summarize(series),
	}

	s.cache.Set(monthlyKey, response)
	return response, nil
}

func (s *Service) sellerCohorts(ctx context.Context) (emissions, payments []domain.SellerCohortCounts, err error) {
	emissions, err = s.taxEventRepository.GetSellerCohorts(ctx, domain.EventTypeEmission)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar coortes de emissão")
		return nil, nil, errors.Wrap(err, "erro ao buscar coortes de emissão")
	}

	payments, err = s.taxEventRepository.GetSellerCohorts(ctx, domain.EventTypePayment)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar coortes de pagamento")
		return nil, nil, errors.Wrap(err, "erro ao buscar coortes de pagamento")
	}

	return emissions, payments, nil
}

func (s *Service) GetSellersMetrics(ctx context.Context) (*domain.SellersResponse, error) {
	if response, ok := cached[domain.SellersResponse](s.cache, sellersKey); ok {
		return response, nil
	}

	emissions, payments, err := s.sellerCohorts(ctx)
	if err != nil {
		return nil, err
	}

	response := &domain.SellersResponse{
		Data: deriver.DeriveSellersSplit(emissions, payments),
	}

	s.cache.Set(sellersKey, response)
	return response, nil
}

func monthDetailKey(period domain.Period, filter domain.FilterMode) string {
	return fmt.Sprintf("metrics:month:%s:%s", period, filter)
}

func (s *Service) GetMonthDetail(ctx context.Context, rawPeriod, rawFilter string) (*domain.MonthDetail, error) {
	period, err := domain.ParsePeriod(rawPeriod)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPeriod, err.Error())
	}

	filter, err := domain.ParseFilterMode(rawFilter)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	key := monthDetailKey(period, filter)
	if detail, ok := cached[domain.MonthDetail](s.cache, key); ok {
		return detail, nil
	}

	var (
		current, previous       *domain.MonthTotals
		top                     []domain.FiscalPeriodCount
		currentErr, previousErr error
		topErr                  error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		current, currentErr = s.taxEventRepository.GetMonthTotals(ctx, period, filter)
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.taxEventRepository.GetMonthTotals(ctx, period.Previous(), filter)
	}()

	// O ranking de períodos fiscais só faz sentido filtrando pela data do evento
	go func() {
		defer wg.Done()
		if filter == domain.FilterByEvent {
			top, topErr = s.taxEventRepository.GetTopFiscalPeriods(ctx, period, topFiscalPeriodsLimit)
		}
	}()

	wg.Wait()

	for _, err := range []error{currentErr, previousErr, topErr} {
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"period": period.String(),
				"filter": filter,
			}).WithError(err).Error("Erro ao buscar detalhe do mês")
			return nil, errors.Wrap(err, "erro ao buscar detalhe do mês")
		}
	}

	if current.IsEmpty() {
		return nil, errors.Wrap(ErrPeriodNotFound, period.String())
	}

	detail := deriver.DeriveMonthDetail(period, filter, *current, previous, top)

	s.cache.Set(key, &detail)
	return &detail, nil
}

func (s *Service) GetNextSteps(ctx context.Context) (*domain.NextStepsResponse, error) {
	if response, ok := cached[domain.NextStepsResponse](s.cache, nextStepsKey); ok {
		return response, nil
	}

	cohorts, err := s.taxEventRepository.GetCohortActivity(ctx, cohortsLimit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar coortes")
		return nil, errors.Wrap(err, "erro ao buscar coortes")
	}

	engagement, err := s.taxEventRepository.GetEngagementBuckets(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar engajamento")
		return nil, errors.Wrap(err, "erro ao buscar engajamento")
	}

	// Períodos fiscais pendentes só contam até o mês anterior ao atual
	until := domain.PeriodOf(s.now().UTC()).Previous()
	pending, err := s.taxEventRepository.GetPendingPeriodsBuckets(ctx, until)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar períodos pendentes")
		return nil, errors.Wrap(err, "erro ao buscar períodos pendentes")
	}

	response := &domain.NextStepsResponse{
		Cohorts:    deriver.DeriveCohortRetention(cohorts),
		Engagement: engagement,
		Pending:    pending,
	}

	s.cache.Set(nextStepsKey, response)
	return response, nil
}

// Warmup descarta o cache e recalcula a série mensal, os sellers e os próximos passos.
// Detalhes de mês voltam a ser calculados sob demanda.
func (s *Service) Warmup(ctx context.Context) error {
	s.cache.Purge()

	if _, err := s.GetMonthlyMetrics(ctx); err != nil {
		return err
	}
	if _, err := s.GetSellersMetrics(ctx); err != nil {
		return err
	}
	if _, err := s.GetNextSteps(ctx); err != nil {
		return err
	}

	return nil
}
