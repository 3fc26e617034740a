package metadomain

import "github.com/shopspring/decimal"

// AdAccountInsight é uma linha de insights no nível de conta
type AdAccountInsight struct {
	AccountID string          `json:"account_id"`
	Spend     decimal.Decimal `json:"spend"`
	DateStart string          `json:"date_start"`
	DateStop  string          `json:"date_stop"`
}

type InsightsResponse struct {
	Data []AdAccountInsight `json:"data"`
}

// TimeRange é serializado inline no parâmetro time_range
type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// SumSpend soma o gasto de todas as linhas; sem linhas o gasto é zero
func SumSpend(rows []AdAccountInsight) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Spend)
	}
	return total
}
