package handler

import (
	"net/http"

	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/notifying"
)

func GetPendingsSummary(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar resumo das notificações")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetPendingsMonthly(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetMonthly(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar notificações mensais")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetPendingsByCriticality(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetByCriticality(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar notificações por criticidade")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetPendingsComparison(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetComparison(r.Context())
		if err != nil {
			writeInternalError(w, "Erro ao buscar comparação de pagamentos")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}
