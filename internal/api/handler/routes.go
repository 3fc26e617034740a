package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/profit-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
	"github.com/vfg2006/profit-tracker-api/pkg/middleware"
)

var noStore = []func(http.Handler) http.Handler{middleware.NoStore()}

func Healthcheck(aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/v1/health/providers",
			Method:  http.MethodGet,
			Handler: ProviderHealth(aggregator),
		},
	}
}

// ProfitData expõe a rota consumida pelo painel legado
func ProfitData(aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/profit-data",
			Method:      http.MethodGet,
			Handler:     GetProfitData(aggregator),
			Middlewares: noStore,
		},
		{
			Path:        "/api/profit-data",
			Method:      http.MethodHead,
			Handler:     GetProfitData(aggregator),
			Middlewares: noStore,
		},
	}
}

func Profit(aggregator aggregating.Aggregator, sessions profiting.SessionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/profit",
			Method:      http.MethodGet,
			Handler:     GetProfit(aggregator, sessions),
			Middlewares: noStore,
		},
	}
}

func Sessions(sessions profiting.SessionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(sessions),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(sessions),
		},
		{
			Path:    "/v1/sessions/:id/costs",
			Method:  http.MethodPut,
			Handler: UpdateSessionCosts(sessions),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
