package shopify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

// ShopifyService traduz um DateKey em consulta de pedidos pagos e a resposta em OrderMetrics
type ShopifyService struct {
	Client    shopifyclient.Client
	location  *time.Location
	configErr *domain.ConfigurationError
}

func New(cfg *config.Config, client shopifyclient.Client) *ShopifyService {
	s := &ShopifyService{
		Client:   client,
		location: cfg.App.Location,
	}

	if missing := cfg.Shopify.Missing(); len(missing) > 0 {
		s.configErr = domain.NewConfigurationError(domain.ProviderShopify, missing...)
	}

	return s
}

func (s *ShopifyService) ID() domain.ProviderID {
	return domain.ProviderShopify
}

// ConfigError retorna o erro de configuração do provedor, ou nil quando configurado
func (s *ShopifyService) ConfigError() error {
	if s.configErr == nil {
		return nil
	}
	return s.configErr
}

func (s *ShopifyService) FetchOrders(ctx context.Context, date domain.DateKey) (*domain.OrderMetrics, error) {
	if err := s.ConfigError(); err != nil {
		return nil, err
	}

	start, end := date.Interval(s.location)

	orders, err := s.Client.GetOrders(ctx, shopifyclient.OrdersParams{
		CreatedAtMin: start,
		CreatedAtMax: end,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderShopify,
			"date":     date.String(),
			"error":    err.Error(),
		}).Error("orders: failed to get orders from API")
		return nil, err
	}

	metrics := shopifydomain.SumOrders(orders, start, end)

	logrus.WithFields(logrus.Fields{
		"provider":    domain.ProviderShopify,
		"date":        date.String(),
		"orders":      metrics.OrderCount,
		"revenue":     metrics.RevenueTotal.String(),
		"api_records": len(orders),
	}).Debug("orders: successfully retrieved order metrics")

	return &metrics, nil
}
