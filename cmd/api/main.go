package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/profit-tracker-api/internal/api"
	"github.com/vfg2006/profit-tracker-api/internal/api/handler"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/scheduler"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shopifyIntegrator := shopify.New(cfg, shopifyclient.NewClient(cfg))
	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	tiktokIntegrator := tiktok.New(cfg, tiktokclient.NewClient(cfg))

	aggregator := aggregating.NewService(cfg, shopifyIntegrator, metaIntegrator, tiktokIntegrator)
	logProviderStatuses(aggregator)

	sessions := profiting.NewSessionStore(cfg)

	dailyReportService := scheduler.NewDailyReportService(aggregator, cfg)
	sessionCleanupService := scheduler.NewSessionCleanupService(sessions, cfg)

	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, aggregator, sessions, handler.CronJobServices{
		DailyReport:    dailyReportService,
		SessionCleanup: sessionCleanupService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// logProviderStatuses avisa na inicialização quais provedores estão sem credenciais
func logProviderStatuses(aggregator aggregating.Aggregator) {
	for _, status := range aggregator.ProviderStatuses() {
		entry := logrus.WithFields(logrus.Fields{
			"provider": status.Provider,
			"missing":  status.Missing,
		})

		switch {
		case status.Configured:
			entry.Info("Provedor configurado")
		case status.Required:
			entry.Error("Provedor obrigatório sem credenciais; /api/profit-data responderá 503")
		default:
			entry.Warn("Provedor opcional sem credenciais; gasto será reportado como zero")
		}
	}
}
