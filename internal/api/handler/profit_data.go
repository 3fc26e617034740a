package handler

import (
	"net/http"

	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

// ProfitDataResponse mantém os campos do painel legado; valores monetários como número
type ProfitDataResponse struct {
	Date              string                                     `json:"date"`
	Revenue           float64                                    `json:"revenue"`
	Orders            int                                        `json:"orders"`
	MetaAdSpend       float64                                    `json:"metaAdSpend"`
	TikTokAdSpend     float64                                    `json:"tiktokAdSpend"`
	AdSpendByProvider map[domain.ProviderID]float64              `json:"adSpendByProvider"`
	Providers         map[domain.ProviderID]domain.ProviderState `json:"providers"`
}

func NewProfitDataResponse(metrics *domain.AggregatedMetrics) ProfitDataResponse {
	spend := make(map[domain.ProviderID]float64, len(metrics.AdSpendByProvider))
	for provider, value := range metrics.AdSpendByProvider {
		spend[provider] = utils.DecimalToFloat(value)
	}

	return ProfitDataResponse{
		Date:              metrics.Date.String(),
		Revenue:           utils.DecimalToFloat(metrics.Revenue),
		Orders:            metrics.Orders,
		MetaAdSpend:       utils.DecimalToFloat(metrics.AdSpend(domain.ProviderMeta)),
		TikTokAdSpend:     utils.DecimalToFloat(metrics.AdSpend(domain.ProviderTikTok)),
		AdSpendByProvider: spend,
		Providers:         metrics.Providers,
	}
}

// GetProfitData devolve as métricas agregadas de um dia no formato do painel
func GetProfitData(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, ok := parseDateParam(w, r, logger)
		if !ok {
			return
		}

		logger.WithField("date", date.String()).Info("profit: aggregating daily metrics")

		metrics, err := aggregator.Aggregate(r.Context(), date)
		if err != nil {
			writeError(w, logger.WithField("date", date.String()), err)
			return
		}

		if degraded := metrics.DegradedProviders(); len(degraded) > 0 {
			logger.WithFields(log.Fields{
				"date":     date.String(),
				"degraded": degraded,
			}).Warn("profit: responding with degraded ad spend")
		}

		writeJSON(w, http.StatusOK, NewProfitDataResponse(metrics))
	})
}
