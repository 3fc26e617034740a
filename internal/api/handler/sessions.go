package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
)

// UpdateCostsRequest aceita números ou strings decimais; todos os campos são obrigatórios
type UpdateCostsRequest struct {
	UnitCOGS          *decimal.Decimal `json:"unit_cogs"`
	UnitShipping      *decimal.Decimal `json:"unit_shipping"`
	MonthlyFixedCosts *decimal.Decimal `json:"monthly_fixed_costs"`
}

func (r UpdateCostsRequest) missing() []string {
	missing := make([]string, 0)
	if r.UnitCOGS == nil {
		missing = append(missing, "unit_cogs")
	}
	if r.UnitShipping == nil {
		missing = append(missing, "unit_shipping")
	}
	if r.MonthlyFixedCosts == nil {
		missing = append(missing, "monthly_fixed_costs")
	}
	return missing
}

func CreateSession(sessions profiting.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, err := sessions.Create()
		if err != nil {
			writeError(w, logger, err)
			return
		}

		logger.WithField("session_id", session.ID).Info("session: created")
		writeJSON(w, http.StatusCreated, session)
	})
}

func GetSession(sessions profiting.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("session_id", id)

		session, err := sessions.Get(id)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

func UpdateSessionCosts(sessions profiting.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("session_id", id)

		var req UpdateCostsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("session: invalid costs payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if missing := req.missing(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Premissas de custo incompletas", map[string]any{"missing": missing})
			return
		}

		session, err := sessions.UpdateCosts(id, domain.CostAssumptions{
			UnitCOGS:          *req.UnitCOGS,
			UnitShipping:      *req.UnitShipping,
			MonthlyFixedCosts: *req.MonthlyFixedCosts,
		})
		if err != nil {
			writeError(w, logger, err)
			return
		}

		logger.Info("session: costs updated")
		writeJSON(w, http.StatusOK, session)
	})
}
