package domain

import (
	"fmt"
	"strings"

	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

// ValidationError indica entrada inválida do cliente (400/405)
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConfigurationError indica credenciais ou identificadores ausentes para um provedor.
// Não é um erro transitório e não deve ser retentado.
type ConfigurationError struct {
	Provider ProviderID
	Missing  []string
}

func NewConfigurationError(provider ProviderID, missing ...string) *ConfigurationError {
	return &ConfigurationError{Provider: provider, Missing: missing}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: provider not configured (missing %s)", e.Provider, strings.Join(e.Missing, ", "))
}

// ProviderError é uma falha de transporte ou de status de um provedor externo.
// StatusCode é zero quando a falha ocorreu antes de haver resposta.
type ProviderError struct {
	Provider   ProviderID
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable indica falha transitória: erro de transporte, 429 ou 5xx
func (e *ProviderError) Retryable() bool {
	return e.StatusCode == 0 || utils.IsRetryableStatus(e.StatusCode)
}

// AggregationError envolve a falha fatal de uma agregação
type AggregationError struct {
	Date DateKey
	Err  error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation for %s failed: %v", e.Date, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
