package aggregating

import (
	"context"

	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// OrdersProvider define a fonte obrigatória de receita e pedidos
type OrdersProvider interface {
	ID() domain.ProviderID
	// ConfigError retorna *domain.ConfigurationError quando faltam credenciais
	ConfigError() error
	FetchOrders(ctx context.Context, date domain.DateKey) (*domain.OrderMetrics, error)
}

// AdSpendProvider define uma fonte opcional de gasto com anúncios
type AdSpendProvider interface {
	ID() domain.ProviderID
	ConfigError() error
	FetchAdSpend(ctx context.Context, date domain.DateKey) (*domain.AdSpendMetrics, error)
}

// Aggregator combina os provedores em um AggregatedMetrics por dia
type Aggregator interface {
	Aggregate(ctx context.Context, date domain.DateKey) (*domain.AggregatedMetrics, error)

	// ProviderStatuses relata a configuração de cada provedor, sem chamadas externas
	ProviderStatuses() []domain.ProviderStatus
}
