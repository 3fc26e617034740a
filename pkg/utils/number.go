package utils

import "github.com/shopspring/decimal"

// DecimalToFloat converte valores monetários para o formato numérico do JSON legado
func DecimalToFloat(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.InexactFloat64()
}
