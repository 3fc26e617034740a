package shopifyclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tomnomnom/linkheader"
	shopifydomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/metrics"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const (
	pageLimit = 250
	// limite de páginas por consulta para não seguir links indefinidamente
	maxPages = 200
)

type OrdersParams struct {
	CreatedAtMin time.Time
	CreatedAtMax time.Time
}

// BuildOrdersRequest monta a primeira requisição da listagem de pedidos pagos do período
func BuildOrdersRequest(ctx context.Context, cfg config.Shopify, params OrdersParams) (*http.Request, error) {
	endpoint, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base do Shopify: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "admin/api", cfg.APIVersion, "orders.json")

	query := endpoint.Query()
	query.Set("created_at_min", params.CreatedAtMin.Format(time.RFC3339))
	query.Set("created_at_max", params.CreatedAtMax.Format(time.RFC3339))
	query.Set("financial_status", shopifydomain.FinancialStatusPaid)
	query.Set("status", "any")
	query.Set("limit", fmt.Sprint(pageLimit))
	query.Set("fields", "id,name,created_at,currency,financial_status,total_price")
	endpoint.RawQuery = query.Encode()

	return newRequest(ctx, cfg, endpoint.String())
}

func newRequest(ctx context.Context, cfg config.Shopify, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// GetOrders busca todas as páginas de pedidos pagos do período
func (c *ShopifyClient) GetOrders(ctx context.Context, params OrdersParams) ([]shopifydomain.Order, error) {
	req, err := BuildOrdersRequest(ctx, c.cfg, params)
	if err != nil {
		return nil, err
	}

	orders := make([]shopifydomain.Order, 0)
	pageURL := req.URL.String()

	for page := 0; pageURL != "" && page < maxPages; page++ {
		var (
			pageOrders []shopifydomain.Order
			next       string
		)

		err := c.retry.Do(ctx, func(attempt int) error {
			started := time.Now()
			var fetchErr error
			pageOrders, next, fetchErr = c.fetchPage(ctx, pageURL)
			metrics.ObserveProviderAttempt(string(domain.ProviderShopify), attempt, started, fetchErr)

			return utils.Classify(ctx, fetchErr)
		}, func(attempt int, err error, wait time.Duration) {
			logrus.WithFields(logrus.Fields{
				"provider": domain.ProviderShopify,
				"attempt":  attempt,
				"page":     page,
				"wait":     wait.String(),
				"error":    err.Error(),
			}).Warn("shopify: order page request failed, retrying")
		})
		if err != nil {
			return nil, err
		}

		orders = append(orders, pageOrders...)
		pageURL = next
	}

	if pageURL != "" {
		logrus.WithField("provider", domain.ProviderShopify).Warn("shopify: page limit reached, result may be incomplete")
	}

	return orders, nil
}

func (c *ShopifyClient) fetchPage(ctx context.Context, pageURL string) ([]shopifydomain.Order, string, error) {
	req, err := newRequest(ctx, c.cfg, pageURL)
	if err != nil {
		return nil, "", &domain.ProviderError{Provider: domain.ProviderShopify, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &domain.ProviderError{Provider: domain.ProviderShopify, Err: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", &domain.ProviderError{
			Provider:   domain.ProviderShopify,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status %s: %s", resp.Status, describeError(body)),
		}
	}

	var response shopifydomain.OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, "", &domain.ProviderError{
			Provider:   domain.ProviderShopify,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("erro ao decodificar a resposta: %w", err),
		}
	}

	return response.Orders, NextPageURL(resp.Header.Get("Link")), nil
}

// NextPageURL extrai o link rel="next" do cabeçalho Link da paginação por cursor
func NextPageURL(linkHeader string) string {
	next := linkheader.Parse(linkHeader).FilterByRel("next")
	if len(next) == 0 {
		return ""
	}
	return next[0].URL
}

func describeError(body []byte) string {
	var errResp shopifydomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Errors != nil {
		return fmt.Sprint(errResp.Errors)
	}
	return strings.TrimSpace(string(body))
}
