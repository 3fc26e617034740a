package tiktokdomain

import "github.com/shopspring/decimal"

const (
	ReportTypeBasic       = "BASIC"
	DataLevelAdvertiser   = "AUCTION_ADVERTISER"
	DimensionAdvertiserID = "advertiser_id"
	MetricSpend           = "spend"
)

// CodeOK é o code do envelope em respostas bem-sucedidas
const CodeOK = 0

// ReportRequest é o corpo do relatório integrado
type ReportRequest struct {
	AdvertiserID string   `json:"advertiser_id"`
	ReportType   string   `json:"report_type"`
	DataLevel    string   `json:"data_level"`
	Dimensions   []string `json:"dimensions"`
	Metrics      []string `json:"metrics"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

// ReportResponse é o envelope da Business API; code diferente de zero indica falha mesmo com HTTP 200
type ReportResponse struct {
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	RequestID string     `json:"request_id"`
	Data      ReportData `json:"data"`
}

type ReportData struct {
	List []ReportRow `json:"list"`
}

type ReportRow struct {
	Dimensions map[string]string `json:"dimensions"`
	Metrics    ReportMetrics     `json:"metrics"`
}

type ReportMetrics struct {
	Spend decimal.Decimal `json:"spend"`
}

// SumSpend soma o gasto das linhas; lista vazia é gasto zero
func SumSpend(rows []ReportRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Metrics.Spend)
	}
	return total
}
