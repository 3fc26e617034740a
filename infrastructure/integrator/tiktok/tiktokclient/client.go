package tiktokclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	tiktokdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	GetSpendReport(ctx context.Context, params ReportParams) ([]tiktokdomain.ReportRow, error)
}

type TikTokClient struct {
	httpClient *http.Client
	cfg        config.TikTok
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		httpClient: &http.Client{
			Timeout: cfg.ProviderHTTP.Timeout,
		},
		cfg:   cfg.TikTok,
		retry: utils.NewRetryPolicy(cfg.ProviderHTTP.RetryBaseDelay, cfg.ProviderHTTP.MaxRetries),
	}
}
