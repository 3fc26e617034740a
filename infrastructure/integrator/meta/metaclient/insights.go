package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/metrics"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const accountPrefix = "act_"

// InsightsParams delimita o período consultado; Since e Until são inclusivos
type InsightsParams struct {
	Since domain.DateKey
	Until domain.DateKey
}

// AccountPath normaliza o id da conta de anúncios, adicionando "act_" apenas quando ausente
func AccountPath(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, accountPrefix) {
		return accountID
	}
	return accountPrefix + accountID
}

// BuildInsightsRequest monta a consulta de gasto no nível de conta para o período
func BuildInsightsRequest(ctx context.Context, cfg config.Meta, params InsightsParams) (*http.Request, error) {
	timeRange, err := json.Marshal(metadomain.TimeRange{
		Since: params.Since.String(),
		Until: params.Until.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar time_range: %w", err)
	}

	query := url.Values{}
	query.Set("fields", "spend")
	query.Set("level", "account")
	query.Set("time_range", string(timeRange))
	query.Set("access_token", cfg.AccessToken)

	endpoint := strings.TrimRight(cfg.URL, "/") + "/" + AccountPath(cfg.AdAccountID) + "/insights?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// GetAdAccountInsights busca as linhas de gasto da conta configurada
func (c *MetaClient) GetAdAccountInsights(ctx context.Context, params InsightsParams) ([]metadomain.AdAccountInsight, error) {
	var rows []metadomain.AdAccountInsight

	err := c.retry.Do(ctx, func(attempt int) error {
		started := time.Now()
		var fetchErr error
		rows, fetchErr = c.fetch(ctx, params)
		metrics.ObserveProviderAttempt(string(domain.ProviderMeta), attempt, started, fetchErr)

		return utils.Classify(ctx, fetchErr)
	}, func(attempt int, err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderMeta,
			"attempt":  attempt,
			"wait":     wait.String(),
			"error":    err.Error(),
		}).Warn("meta: insights request failed, retrying")
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *MetaClient) fetch(ctx context.Context, params InsightsParams) ([]metadomain.AdAccountInsight, error) {
	req, err := BuildInsightsRequest(ctx, c.cfg, params)
	if err != nil {
		return nil, &domain.ProviderError{Provider: domain.ProviderMeta, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// a URL do erro de transporte carrega o token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = utils.RedactURL(urlErr.URL)
		}
		return nil, &domain.ProviderError{Provider: domain.ProviderMeta, Err: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: domain.ProviderMeta, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao ler a resposta: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderMeta,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status %s: %s", resp.Status, describeError(body)),
		}
	}

	var response metadomain.InsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderMeta,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("erro ao decodificar JSON: %w", err),
		}
	}

	return response.Data, nil
}

func describeError(body []byte) string {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if errResp.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"provider":   domain.ProviderMeta,
			"code":       errResp.Error.Code,
			"subcode":    errResp.Error.ErrorSubcode,
			"fbtrace_id": errResp.Error.FBTraceID,
		}).Error("meta: access token expired, META_ACCESS_TOKEN must be renewed")
	}

	return fmt.Sprintf("%s (code %d, fbtrace_id %s)", errResp.Error.Message, errResp.Error.Code, errResp.Error.FBTraceID)
}
