package domain

import (
	"github.com/shopspring/decimal"
)

// CostAssumptions são as premissas de custo editáveis pelo usuário durante a sessão
type CostAssumptions struct {
	UnitCOGS          decimal.Decimal `json:"unit_cogs"`
	UnitShipping      decimal.Decimal `json:"unit_shipping"`
	MonthlyFixedCosts decimal.Decimal `json:"monthly_fixed_costs"`
}

// Validate rejeita valores negativos
func (c CostAssumptions) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"unit_cogs", c.UnitCOGS},
		{"unit_shipping", c.UnitShipping},
		{"monthly_fixed_costs", c.MonthlyFixedCosts},
	}

	for _, f := range fields {
		if f.value.IsNegative() {
			return NewValidationError(f.name, "must not be negative")
		}
	}

	return nil
}

// ProfitBreakdown é derivado de AggregatedMetrics e CostAssumptions; nunca é persistido
type ProfitBreakdown struct {
	Revenue         decimal.Decimal `json:"revenue"`
	TotalCOGS       decimal.Decimal `json:"total_cogs"`
	TotalShipping   decimal.Decimal `json:"total_shipping"`
	TotalAdSpend    decimal.Decimal `json:"total_ad_spend"`
	DailyFixedCosts decimal.Decimal `json:"daily_fixed_costs"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	Orders          int             `json:"orders"`
}

// Rounded arredonda os valores monetários para exibição
func (b ProfitBreakdown) Rounded(places int32) ProfitBreakdown {
	return ProfitBreakdown{
		Revenue:         b.Revenue.Round(places),
		TotalCOGS:       b.TotalCOGS.Round(places),
		TotalShipping:   b.TotalShipping.Round(places),
		TotalAdSpend:    b.TotalAdSpend.Round(places),
		DailyFixedCosts: b.DailyFixedCosts.Round(places),
		NetProfit:       b.NetProfit.Round(places),
		Orders:          b.Orders,
	}
}

func (b ProfitBreakdown) IsProfit() bool {
	return b.NetProfit.IsPositive()
}
