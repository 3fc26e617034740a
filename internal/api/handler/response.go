package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError traduz erros de domínio em respostas padronizadas.
// Mensagens de provedores externos ficam apenas no log.
func writeError(w http.ResponseWriter, logger log.Logger, err error) {
	var (
		validationErr  *domain.ValidationError
		configErr      *domain.ConfigurationError
		aggregationErr *domain.AggregationError
		providerErr    *domain.ProviderError
		sessionErr     *profiting.SessionError
	)

	switch {
	case errors.As(err, &sessionErr):
		logger.WithError(err).Warn("session: request rejected")
		apiErrors.WriteError(w, sessionErr.Code, sessionMessage(sessionErr), nil)

	case errors.As(err, &validationErr):
		logger.WithError(err).Warn("request: invalid input")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{"field": validationErr.Field})

	case errors.As(err, &configErr):
		logger.WithFields(log.Fields{
			"provider": configErr.Provider,
			"missing":  configErr.Missing,
		}).Error("aggregation: required provider not configured")
		apiErrors.WriteError(w, apiErrors.ErrProviderNotConfigured, "Provedor de pedidos não configurado", map[string]any{"provider": configErr.Provider})

	case errors.As(err, &aggregationErr), errors.As(err, &providerErr):
		logger.WithError(err).Error("aggregation: failed to build daily metrics")
		apiErrors.WriteError(w, apiErrors.ErrAggregationFailed, "Não foi possível obter os dados do dia", nil)

	default:
		logger.WithError(err).Error("request: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func sessionMessage(err *profiting.SessionError) string {
	switch {
	case errors.Is(err, profiting.ErrSessionNotFound):
		return "Sessão não encontrada ou expirada"
	case errors.Is(err, profiting.ErrInvalidCosts):
		return err.Error()
	default:
		return "Erro interno no servidor"
	}
}

// parseDateParam valida o parâmetro date; sem ele nenhum provedor é consultado
func parseDateParam(w http.ResponseWriter, r *http.Request, logger log.Logger) (domain.DateKey, bool) {
	raw := r.URL.Query().Get("date")

	if raw == "" {
		logger.Warn("request: date parameter missing")
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date parameter required", nil)
		return domain.DateKey{}, false
	}

	date, err := domain.ParseDateKey(raw)
	if err != nil {
		logger.WithFields(log.Fields{
			"date":  raw,
			"error": err.Error(),
		}).Warn("request: invalid date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.DateKey{}, false
	}

	return date, true
}

// MethodNotAllowed responde 405 em JSON, mantendo o cabeçalho Allow definido pelo router
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Warn("request: method not allowed")
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
	})
}

func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}
