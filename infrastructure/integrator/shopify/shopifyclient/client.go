package shopifyclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	shopifydomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	GetOrders(ctx context.Context, params OrdersParams) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	cfg        config.Shopify
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: cfg.ProviderHTTP.Timeout,
		},
		cfg:   cfg.Shopify,
		retry: utils.NewRetryPolicy(cfg.ProviderHTTP.RetryBaseDelay, cfg.ProviderHTTP.MaxRetries),
	}
}
