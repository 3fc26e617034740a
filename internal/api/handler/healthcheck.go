package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

type ProviderHealthResponse struct {
	Ready     bool                    `json:"ready"`
	Providers []domain.ProviderStatus `json:"providers"`
}

// ProviderHealth relata a configuração dos provedores sem chamar nenhuma API externa.
// Responde 503 quando um provedor obrigatório está sem credenciais.
func ProviderHealth(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses := aggregator.ProviderStatuses()

		ready := true
		for _, status := range statuses {
			if status.Required && !status.Configured {
				ready = false
			}
		}

		code := http.StatusOK
		if !ready {
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, code, ProviderHealthResponse{Ready: ready, Providers: statuses})
	})
}
