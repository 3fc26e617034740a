package handler

import (
	"net/http"

	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
)

type ProfitResponse struct {
	Date      string                                     `json:"date"`
	SessionID string                                     `json:"session_id,omitempty"`
	Costs     domain.CostAssumptions                     `json:"costs"`
	Breakdown domain.ProfitBreakdown                     `json:"breakdown"`
	IsProfit  bool                                       `json:"is_profit"`
	Providers map[domain.ProviderID]domain.ProviderState `json:"providers"`
}

// GetProfit calcula o lucro do dia com as premissas da sessão (ou as padrão, sem sessão)
func GetProfit(aggregator aggregating.Aggregator, sessions profiting.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, ok := parseDateParam(w, r, logger)
		if !ok {
			return
		}

		sessionID := r.URL.Query().Get("session")
		logger = logger.WithFields(log.Fields{
			"date":       date.String(),
			"session_id": sessionID,
		})

		costs, err := sessions.CostsFor(sessionID)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		metrics, err := aggregator.Aggregate(r.Context(), date)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		breakdown := profiting.ComputeBreakdown(*metrics, costs)

		logger.WithField("net_profit", breakdown.NetProfit.String()).Debug("profit: breakdown computed")

		writeJSON(w, http.StatusOK, ProfitResponse{
			Date:      date.String(),
			SessionID: sessionID,
			Costs:     costs,
			Breakdown: breakdown.Rounded(profiting.PresentationPlaces),
			IsProfit:  breakdown.IsProfit(),
			Providers: metrics.Providers,
		})
	})
}
