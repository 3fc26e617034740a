package meta

import (
	"context"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

type MetaIntegrator struct {
	Client    metaclient.Client
	configErr *domain.ConfigurationError
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	s := &MetaIntegrator{
		Client: client,
	}

	if missing := cfg.Meta.Missing(); len(missing) > 0 {
		s.configErr = domain.NewConfigurationError(domain.ProviderMeta, missing...)
	}

	return s
}

func (s *MetaIntegrator) ID() domain.ProviderID {
	return domain.ProviderMeta
}

func (s *MetaIntegrator) ConfigError() error {
	if s.configErr == nil {
		return nil
	}
	return s.configErr
}

// FetchAdSpend retorna o gasto da conta no dia; resposta sem linhas significa gasto zero
func (s *MetaIntegrator) FetchAdSpend(ctx context.Context, date domain.DateKey) (*domain.AdSpendMetrics, error) {
	if err := s.ConfigError(); err != nil {
		return nil, err
	}

	rows, err := s.Client.GetAdAccountInsights(ctx, metaclient.InsightsParams{Since: date, Until: date})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderMeta,
			"date":     date.String(),
			"error":    err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	spend := metadomain.SumSpend(rows)

	logrus.WithFields(logrus.Fields{
		"provider": domain.ProviderMeta,
		"date":     date.String(),
		"spend":    spend.String(),
		"rows":     len(rows),
	}).Debug("insights: successfully retrieved ad account spend")

	return &domain.AdSpendMetrics{Provider: domain.ProviderMeta, Spend: spend}, nil
}
