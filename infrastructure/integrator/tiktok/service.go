package tiktok

import (
	"context"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

type TikTokIntegrator struct {
	Client    tiktokclient.Client
	configErr *domain.ConfigurationError
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	s := &TikTokIntegrator{
		Client: client,
	}

	if missing := cfg.TikTok.Missing(); len(missing) > 0 {
		s.configErr = domain.NewConfigurationError(domain.ProviderTikTok, missing...)
	}

	return s
}

func (s *TikTokIntegrator) ID() domain.ProviderID {
	return domain.ProviderTikTok
}

func (s *TikTokIntegrator) ConfigError() error {
	if s.configErr == nil {
		return nil
	}
	return s.configErr
}

func (s *TikTokIntegrator) FetchAdSpend(ctx context.Context, date domain.DateKey) (*domain.AdSpendMetrics, error) {
	if err := s.ConfigError(); err != nil {
		return nil, err
	}

	rows, err := s.Client.GetSpendReport(ctx, tiktokclient.ReportParams{StartDate: date, EndDate: date})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderTikTok,
			"date":     date.String(),
			"error":    err.Error(),
		}).Error("insights: failed to get advertiser report from API")
		return nil, err
	}

	spend := tiktokdomain.SumSpend(rows)

	logrus.WithFields(logrus.Fields{
		"provider": domain.ProviderTikTok,
		"date":     date.String(),
		"spend":    spend.String(),
		"rows":     len(rows),
	}).Debug("insights: successfully retrieved advertiser spend")

	return &domain.AdSpendMetrics{Provider: domain.ProviderTikTok, Spend: spend}, nil
}
