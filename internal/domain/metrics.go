package domain

import (
	"github.com/shopspring/decimal"
)

// OrderMetrics são as métricas de pedidos pagos de um dia
type OrderMetrics struct {
	RevenueTotal decimal.Decimal `json:"revenue_total"`
	OrderCount   int             `json:"order_count"`
}

// AdSpendMetrics é o investimento em anúncios de um provedor em um dia
type AdSpendMetrics struct {
	Provider ProviderID      `json:"provider"`
	Spend    decimal.Decimal `json:"spend"`
}

// AggregatedMetrics é o registro unificado de um dia, entregue à camada de apresentação
type AggregatedMetrics struct {
	Date              DateKey                        `json:"date"`
	Revenue           decimal.Decimal                `json:"revenue"`
	Orders            int                            `json:"orders"`
	AdSpendByProvider map[ProviderID]decimal.Decimal `json:"ad_spend_by_provider"`
	Providers         map[ProviderID]ProviderState   `json:"providers"`
}

// NewAggregatedMetrics cria o registro já com gasto zero para cada provedor de anúncios informado.
func NewAggregatedMetrics(date DateKey, adProviders ...ProviderID) *AggregatedMetrics {
	m := &AggregatedMetrics{
		Date:              date,
		Revenue:           decimal.Zero,
		AdSpendByProvider: make(map[ProviderID]decimal.Decimal, len(adProviders)),
		Providers:         make(map[ProviderID]ProviderState, len(adProviders)+1),
	}

	for _, p := range adProviders {
		m.AdSpendByProvider[p] = decimal.Zero
	}

	return m
}

// AdSpend retorna o gasto de um provedor, zero quando ausente
func (m *AggregatedMetrics) AdSpend(provider ProviderID) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	if spend, ok := m.AdSpendByProvider[provider]; ok {
		return spend
	}
	return decimal.Zero
}

// DegradedProviders lista os provedores que não entregaram dados nesta agregação
func (m *AggregatedMetrics) DegradedProviders() []ProviderID {
	degraded := make([]ProviderID, 0)
	for _, p := range AdProviders {
		if m.Providers[p] == ProviderStateDegraded {
			degraded = append(degraded, p)
		}
	}
	return degraded
}
