package tiktokclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/metrics"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const reportPath = "/open_api/v1.3/report/integrated/get/"

// ReportParams delimita o período do relatório; datas inclusivas
type ReportParams struct {
	StartDate domain.DateKey
	EndDate   domain.DateKey
}

// BuildReportRequest monta a consulta de gasto por anunciante
func BuildReportRequest(ctx context.Context, cfg config.TikTok, params ReportParams) (*http.Request, error) {
	body, err := json.Marshal(tiktokdomain.ReportRequest{
		AdvertiserID: cfg.AdvertiserID,
		ReportType:   tiktokdomain.ReportTypeBasic,
		DataLevel:    tiktokdomain.DataLevelAdvertiser,
		Dimensions:   []string{tiktokdomain.DimensionAdvertiserID},
		Metrics:      []string{tiktokdomain.MetricSpend},
		StartDate:    params.StartDate.String(),
		EndDate:      params.EndDate.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo do relatório: %w", err)
	}

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + reportPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Access-Token", cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// GetSpendReport busca as linhas de gasto do anunciante configurado
func (c *TikTokClient) GetSpendReport(ctx context.Context, params ReportParams) ([]tiktokdomain.ReportRow, error) {
	var rows []tiktokdomain.ReportRow

	err := c.retry.Do(ctx, func(attempt int) error {
		started := time.Now()
		var fetchErr error
		rows, fetchErr = c.fetch(ctx, params)
		metrics.ObserveProviderAttempt(string(domain.ProviderTikTok), attempt, started, fetchErr)

		return utils.Classify(ctx, fetchErr)
	}, func(attempt int, err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderTikTok,
			"attempt":  attempt,
			"wait":     wait.String(),
			"error":    err.Error(),
		}).Warn("tiktok: report request failed, retrying")
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *TikTokClient) fetch(ctx context.Context, params ReportParams) ([]tiktokdomain.ReportRow, error) {
	req, err := BuildReportRequest(ctx, c.cfg, params)
	if err != nil {
		return nil, &domain.ProviderError{Provider: domain.ProviderTikTok, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: domain.ProviderTikTok, Err: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: domain.ProviderTikTok, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao ler a resposta: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderTikTok,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status %s: %s", resp.Status, strings.TrimSpace(string(body))),
		}
	}

	var response tiktokdomain.ReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderTikTok,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("erro ao decodificar JSON: %w", err),
		}
	}

	if response.Code != tiktokdomain.CodeOK {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderTikTok,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("envelope com code %d: %s (request_id %s)", response.Code, response.Message, response.RequestID),
		}
	}

	return response.Data.List, nil
}
