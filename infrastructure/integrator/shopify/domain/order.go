package shopifydomain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

// FinancialStatusPaid é o único status financeiro considerado na receita
const FinancialStatusPaid = "paid"

type Order struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Currency        string          `json:"currency,omitempty"`
	FinancialStatus string          `json:"financial_status,omitempty"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// ErrorResponse é o corpo de erro da Admin API; "errors" pode ser string ou objeto
type ErrorResponse struct {
	Errors interface{} `json:"errors"`
}

// SumOrders soma os pedidos criados dentro do intervalo semiaberto [start, end).
// Pedidos sem created_at são mantidos, pois o filtro já foi aplicado pela API.
func SumOrders(orders []Order, start, end time.Time) domain.OrderMetrics {
	metrics := domain.OrderMetrics{RevenueTotal: decimal.Zero}

	for _, order := range orders {
		if !order.CreatedAt.IsZero() && (order.CreatedAt.Before(start) || !order.CreatedAt.Before(end)) {
			continue
		}

		metrics.RevenueTotal = metrics.RevenueTotal.Add(order.TotalPrice)
		metrics.OrderCount++
	}

	return metrics
}
