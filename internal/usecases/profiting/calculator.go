package profiting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

// FixedCostDays é o divisor fixo do custo mensal, independente do tamanho real do mês
const FixedCostDays = 30

// PresentationPlaces é o número de casas decimais na exibição
const PresentationPlaces = 2

var fixedCostDays = decimal.NewFromInt(FixedCostDays)

// ComputeBreakdown calcula o lucro líquido do dia. Função pura: sem I/O e sem arredondamento.
func ComputeBreakdown(metrics domain.AggregatedMetrics, costs domain.CostAssumptions) domain.ProfitBreakdown {
	orders := decimal.NewFromInt(int64(metrics.Orders))

	totalAdSpend := decimal.Zero
	for _, spend := range metrics.AdSpendByProvider {
		totalAdSpend = totalAdSpend.Add(spend)
	}

	b := domain.ProfitBreakdown{
		Revenue:         metrics.Revenue,
		TotalCOGS:       orders.Mul(costs.UnitCOGS),
		TotalShipping:   orders.Mul(costs.UnitShipping),
		TotalAdSpend:    totalAdSpend,
		DailyFixedCosts: costs.MonthlyFixedCosts.Div(fixedCostDays),
		Orders:          metrics.Orders,
	}

	b.NetProfit = b.Revenue.
		Sub(b.TotalCOGS).
		Sub(b.TotalShipping).
		Sub(b.TotalAdSpend).
		Sub(b.DailyFixedCosts)

	return b
}
