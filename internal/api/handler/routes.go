package handler

import (
	"net/http"

	"github.com/vfg2006/fiscal-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/notifying"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/fiscal-metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/metrics/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/metrics/sellers",
			Method:      http.MethodGet,
			Handler:     GetSellersMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/metrics/month/:period",
			Method:      http.MethodGet,
			Handler:     GetMonthDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/metrics/nextsteps",
			Method:      http.MethodGet,
			Handler:     GetNextSteps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pendings(service notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:        "/api/pendings/summary",
			Method:      http.MethodGet,
			Handler:     GetPendingsSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/pendings/monthly",
			Method:      http.MethodGet,
			Handler:     GetPendingsMonthly(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/pendings/criticality",
			Method:      http.MethodGet,
			Handler:     GetPendingsByCriticality(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/pendings/comparison",
			Method:      http.MethodGet,
			Handler:     GetPendingsComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
