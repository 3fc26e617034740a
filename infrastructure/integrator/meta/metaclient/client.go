package metaclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	GetAdAccountInsights(ctx context.Context, params InsightsParams) ([]metadomain.AdAccountInsight, error)
}

type MetaClient struct {
	httpClient *http.Client
	cfg        config.Meta
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		httpClient: &http.Client{
			Timeout: cfg.ProviderHTTP.Timeout,
		},
		cfg:   cfg.Meta,
		retry: utils.NewRetryPolicy(cfg.ProviderHTTP.RetryBaseDelay, cfg.ProviderHTTP.MaxRetries),
	}
}
