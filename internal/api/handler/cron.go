package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/internal/scheduler"
	"github.com/vfg2006/fiscal-metrics-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	MetricsWarmupService *scheduler.MetricsWarmupService
}

// RunCronJob executa manualmente o aquecimento de um alvo (metrics, pendings ou all)
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if services.MetricsWarmupService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de métricas não disponível", nil)
			return
		}

		err := services.MetricsWarmupService.TriggerManualSync(cronType)
		if errors.Is(err, scheduler.ErrUnknownTarget) {
			accepted := append(services.MetricsWarmupService.Targets(), scheduler.TargetAll)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", accepted)
			return
		}
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.MetricsWarmupService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de métricas não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"metrics-warmup": services.MetricsWarmupService.GetStatus(),
		})
	}
}
