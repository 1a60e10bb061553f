package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/pkg/utils"
)

// TargetAll executa o aquecimento de todos os alvos registrados
const TargetAll = "all"

const warmupTimeout = 5 * time.Minute

// ErrUnknownTarget é retornado quando o alvo pedido não foi registrado
var ErrUnknownTarget = fmt.Errorf("alvo de aquecimento desconhecido")

// Warmer recalcula e guarda em cache as respostas de um serviço
type Warmer interface {
	Warmup(ctx context.Context) error
}

type MetricsWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// MetricsWarmupService agenda o recálculo periódico das respostas do dashboard
type MetricsWarmupService struct {
	scheduler       *gocron.Scheduler
	config          MetricsWarmupConfig
	warmers         map[string]Warmer
	running         bool
	mutex           sync.Mutex
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErrors      map[string]string
}

func NewMetricsWarmupService(appConfig *config.Config, warmers map[string]Warmer) *MetricsWarmupService {
	warmupConfig := MetricsWarmupConfig{
		CronSchedule: appConfig.MetricsWarmup.CronSchedule,
		Enabled:      appConfig.MetricsWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do aquecimento de métricas carregada")

	return &MetricsWarmupService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     warmupConfig,
		warmers:    warmers,
		lastErrors: map[string]string{},
	}
}

// Targets lista os alvos registrados em ordem alfabética
func (s *MetricsWarmupService) Targets() []string {
	targets := make([]string, 0, len(s.warmers))
	for name := range s.warmers {
		targets = append(targets, name)
	}
	sort.Strings(targets)
	return targets
}

// Start agenda o aquecimento e para o agendador quando o contexto termina
func (s *MetricsWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de métricas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(s.Targets())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa os alvos em sequência. Uma execução em andamento faz a nova ser ignorada.
func (s *MetricsWarmupService) run(targets []string) {
	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id da execução de aquecimento")
	}

	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Aquecimento de métricas já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunID = runID
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"targets": targets,
	})
	logger.Info("Iniciando aquecimento de métricas")

	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	failures := map[string]string{}
	for _, target := range targets {
		start := time.Now()
		if err := s.warmers[target].Warmup(ctx); err != nil {
			logger.WithError(err).WithField("target", target).Error("Erro no aquecimento de métricas")
			failures[target] = err.Error()
			continue
		}
		logger.WithFields(logrus.Fields{
			"target":   target,
			"duration": time.Since(start).String(),
		}).Info("Alvo aquecido")
	}

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastErrors = failures
	s.mutex.Unlock()

	logger.WithField("failures", len(failures)).Info("Aquecimento de métricas concluído")
}

// TriggerManualSync dispara o aquecimento de um alvo (ou de todos) em background
func (s *MetricsWarmupService) TriggerManualSync(target string) error {
	targets := s.Targets()
	if target != TargetAll {
		if _, ok := s.warmers[target]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
		}
		targets = []string{target}
	}

	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()
	if running {
		logrus.Info("Aquecimento de métricas já em andamento, ignorando solicitação manual")
		return nil
	}

	logrus.WithField("target", target).Info("Iniciando aquecimento manual de métricas")
	go s.run(targets)

	return nil
}

// GetStatus retorna o estado atual do aquecimento
func (s *MetricsWarmupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lastErrors := make(map[string]string, len(s.lastErrors))
	for target, msg := range s.lastErrors {
		lastErrors[target] = msg
	}

	return map[string]any{
		"sync_running":           s.running,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"targets":                s.Targets(),
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_errors":            lastErrors,
	}
}
