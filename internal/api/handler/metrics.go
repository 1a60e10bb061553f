package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/fiscal-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/fiscal-metrics-api/pkg/log"
)

// GetMonthlyMetrics retorna a série mensal de emissões e pagamentos
func GetMonthlyMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetMonthlyMetrics(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar métricas mensais")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetSellersMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetSellersMetrics(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar métricas de sellers")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetMonthDetail retorna o detalhe de /api/metrics/month/:period?filter=event|fiscal
func GetMonthDetail(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")
		filter := r.URL.Query().Get("filter")

		detail, err := service.GetMonthDetail(r.Context(), period, filter)
		if err != nil {
			switch errors.Cause(err) {
			case reporting.ErrInvalidPeriod:
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use YYYY-MM", period)
			case reporting.ErrInvalidFilter:
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro inválido, use event ou fiscal", filter)
			case reporting.ErrPeriodNotFound:
				apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, "Nenhum evento encontrado no período", period)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar detalhe do mês")
				writeInternalError(w, "Erro ao buscar detalhe do mês")
			}
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

func GetNextSteps(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetNextSteps(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar próximos passos")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}
