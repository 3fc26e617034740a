package profiting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func aggregated(revenue string, orders int, spend map[domain.ProviderID]string) domain.AggregatedMetrics {
	m := domain.NewAggregatedMetrics(domain.DateKey{Year: 2024, Month: time.January, Day: 15}, domain.AdProviders...)
	m.Revenue = d(revenue)
	m.Orders = orders
	for p, v := range spend {
		m.AdSpendByProvider[p] = d(v)
	}
	return *m
}

func TestComputeBreakdown_WorkedExample(t *testing.T) {
	metrics := aggregated("5000.00", 100, map[domain.ProviderID]string{
		domain.ProviderMeta:   "300",
		domain.ProviderTikTok: "150",
	})
	costs := domain.CostAssumptions{UnitCOGS: d("12.50"), UnitShipping: d("4.30"), MonthlyFixedCosts: d("2500")}

	b := ComputeBreakdown(metrics, costs)

	assert.True(t, b.TotalCOGS.Equal(d("1250")), b.TotalCOGS.String())
	assert.True(t, b.TotalShipping.Equal(d("430")), b.TotalShipping.String())
	assert.True(t, b.TotalAdSpend.Equal(d("450")), b.TotalAdSpend.String())
	assert.Equal(t, "83.33", b.DailyFixedCosts.StringFixed(2))
	assert.Equal(t, 100, b.Orders)

	rounded := b.Rounded(PresentationPlaces)
	assert.Equal(t, "2786.67", rounded.NetProfit.StringFixed(2))
	assert.Equal(t, "83.33", rounded.DailyFixedCosts.StringFixed(2))
	assert.True(t, rounded.IsProfit())
}

func TestComputeBreakdown_Identity(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.AggregatedMetrics
		costs   domain.CostAssumptions
	}{
		{
			name:    "Valores com muitas casas decimais",
			metrics: aggregated("1234.5678", 37, map[domain.ProviderID]string{domain.ProviderMeta: "99.999"}),
			costs:   domain.CostAssumptions{UnitCOGS: d("3.3333"), UnitShipping: d("0.0701"), MonthlyFixedCosts: d("1000.01")},
		},
		{
			name:    "Prejuízo",
			metrics: aggregated("10", 1, map[domain.ProviderID]string{domain.ProviderTikTok: "500"}),
			costs:   domain.CostAssumptions{UnitCOGS: d("12.50"), UnitShipping: d("4.30"), MonthlyFixedCosts: d("2500")},
		},
		{
			name:    "Tudo zero",
			metrics: aggregated("0", 0, nil),
			costs:   domain.CostAssumptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(tt.metrics, tt.costs)

			expected := b.Revenue.Sub(b.TotalCOGS).Sub(b.TotalShipping).Sub(b.TotalAdSpend).Sub(b.DailyFixedCosts)
			assert.True(t, expected.Equal(b.NetProfit), "%s != %s", expected, b.NetProfit)

			// determinístico
			assert.Equal(t, b, ComputeBreakdown(tt.metrics, tt.costs))
		})
	}
}

func TestComputeBreakdown_ZeroOrdersAndNoAdProviders(t *testing.T) {
	metrics := domain.AggregatedMetrics{Revenue: decimal.Zero}
	costs := domain.CostAssumptions{UnitCOGS: d("12.50"), UnitShipping: d("4.30"), MonthlyFixedCosts: d("3000")}

	b := ComputeBreakdown(metrics, costs)

	assert.True(t, b.TotalCOGS.IsZero())
	assert.True(t, b.TotalShipping.IsZero())
	assert.True(t, b.TotalAdSpend.IsZero())
	assert.True(t, b.DailyFixedCosts.Equal(d("100")))
	assert.True(t, b.NetProfit.Equal(d("-100")))
	assert.False(t, b.IsProfit())
}
